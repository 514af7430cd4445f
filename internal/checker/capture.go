package checker

// resolveCaptures computes the final Boxed flag for every symbol defined
// in the module. Captured and AssignedAcrossBoundary are set live as
// references and writes are discovered during checkExpr/checkAssign
// (expressions.go); a symbol needs a heap cell, rather than a value the
// emitter can copy into the closure once, only when some inner function
// actually assigns to it — a read-only capture of a variable that is
// only ever mutated by its own declaring function needs no box — and
// since that mutation can lexically precede or follow the closure that
// captures it, the combination can't be known until the whole module
// has been walked.
func (c *Checker) resolveCaptures() {
	for _, sym := range c.allSymbols {
		sym.Boxed = sym.Captured && sym.AssignedAcrossBoundary
	}
}
