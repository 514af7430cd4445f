package bundler

import (
	"fmt"

	"github.com/elematic/zena-sub003/internal/loader"
)

// assignPrefixes gives each module a deterministic `m<k>_` prefix keyed
// by its ordinal in loader discovery order (spec §4.6 step 1) — the
// same order the bundler later concatenates statement lists in, so a
// module's prefix and its position in the output agree.
func assignPrefixes(modules []*loader.Module) map[string]string {
	prefixes := make(map[string]string, len(modules))
	for i, mod := range modules {
		prefixes[mod.Path] = fmt.Sprintf("m%d_", i)
	}
	return prefixes
}
