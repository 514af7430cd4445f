package bundler

import (
	"github.com/elematic/zena-sub003/internal/ast"
)

// renameStatement is spec §4.6 step 4's rewrite walk: top-level
// (scope depth 1) declaration-introducing identifiers become their
// prefixed global name, everything else resolves through resolveName.
// Nodes are mutated in place and returned for call-site convenience.
func (r *renamer) renameStatement(stmt ast.Statement) ast.Statement {
	switch s := stmt.(type) {
	case *ast.VarDeclaration:
		if s.Type != nil {
			r.renameType(s.Type)
		}
		if s.Init != nil {
			r.renameExpr(s.Init)
		}
		r.bindPattern(s.Pattern, r.atTopLevel())

	case *ast.FunctionDeclaration:
		if r.atTopLevel() {
			s.Fn.Name = r.globalName(s.Fn.Name)
		} else {
			r.defineLocal(s.Fn.Name)
		}
		r.renameFunctionExpression(s.Fn)

	case *ast.DeclareFunctionDeclaration:
		if r.atTopLevel() {
			s.Name_ = r.globalName(s.Name_)
		} else {
			r.defineLocal(s.Name_)
		}
		for i := range s.TypeParams {
			r.renameTypeParam(&s.TypeParams[i])
		}
		for i := range s.Params {
			p := &s.Params[i]
			if p.Type != nil {
				r.renameType(p.Type)
			}
			if p.Default != nil {
				r.renameExpr(p.Default)
			}
		}
		if s.ReturnType != nil {
			r.renameType(s.ReturnType)
		}

	case *ast.TypeAliasDeclaration:
		if r.atTopLevel() {
			s.Name_ = r.globalName(s.Name_)
		}
		for i := range s.TypeParams {
			r.renameTypeParam(&s.TypeParams[i])
		}
		r.renameType(s.Value)

	case *ast.SymbolDeclaration:
		if r.atTopLevel() {
			s.Name_ = r.globalName(s.Name_)
		}

	case *ast.ClassDeclaration:
		r.renameClassDeclaration(s)
	case *ast.InterfaceDeclaration:
		r.renameInterfaceDeclaration(s)
	case *ast.MixinDeclaration:
		r.renameMixinDeclaration(s)

	case *ast.BlockStatement:
		r.pushScope(false)
		for _, st := range s.Statements {
			r.renameStatement(st)
		}
		r.popScope()

	case *ast.ExpressionStatement:
		r.renameExpr(s.Expr)

	case *ast.IfStatement:
		r.renameExpr(s.Cond)
		r.renameStatement(s.Then)
		if s.Else != nil {
			r.renameStatement(s.Else)
		}

	case *ast.WhileStatement:
		r.renameExpr(s.Cond)
		r.renameStatement(s.Body)

	case *ast.ForStatement:
		r.pushScope(false)
		if s.Init != nil {
			r.renameStatement(s.Init)
		}
		if s.Cond != nil {
			r.renameExpr(s.Cond)
		}
		if s.Update != nil {
			r.renameExpr(s.Update)
		}
		r.renameStatement(s.Body)
		r.popScope()

	case *ast.ReturnStatement:
		if s.Value != nil {
			r.renameExpr(s.Value)
		}

	case *ast.BreakStatement, *ast.ContinueStatement:
		// no names

	case *ast.ThrowStatement:
		r.renameExpr(s.Value)

	case *ast.TryStatement:
		r.renameStatement(s.Block)
		for ci := range s.Catches {
			cl := &s.Catches[ci]
			r.pushScope(false)
			if cl.Type != nil {
				r.renameType(cl.Type)
			}
			if cl.Name != "" {
				r.defineLocal(cl.Name)
			}
			for _, st := range cl.Body.Statements {
				r.renameStatement(st)
			}
			r.popScope()
		}
		if s.Finally != nil {
			r.renameStatement(s.Finally)
		}
	}
	return stmt
}

func (r *renamer) renameClassDeclaration(d *ast.ClassDeclaration) {
	if r.atTopLevel() {
		d.Name_ = r.globalName(d.Name_)
	}
	for i := range d.TypeParams {
		r.renameTypeParam(&d.TypeParams[i])
	}
	if d.Super != nil {
		r.renameType(d.Super)
	}
	for _, t := range d.Implements {
		r.renameType(t)
	}
	for _, t := range d.Mixins {
		r.renameType(t)
	}
	if d.OnType != nil {
		r.renameType(d.OnType)
	}
	for i := range d.Fields {
		r.renameField(&d.Fields[i])
	}
	for i := range d.Accessors {
		r.renameAccessor(&d.Accessors[i])
	}
	for i := range d.Methods {
		r.renameMethod(&d.Methods[i])
	}
}

func (r *renamer) renameInterfaceDeclaration(d *ast.InterfaceDeclaration) {
	if r.atTopLevel() {
		d.Name_ = r.globalName(d.Name_)
	}
	for i := range d.TypeParams {
		r.renameTypeParam(&d.TypeParams[i])
	}
	for _, t := range d.Extends {
		r.renameType(t)
	}
	for i := range d.Fields {
		r.renameField(&d.Fields[i])
	}
	for i := range d.Methods {
		r.renameMethod(&d.Methods[i])
	}
}

func (r *renamer) renameMixinDeclaration(d *ast.MixinDeclaration) {
	if r.atTopLevel() {
		d.Name_ = r.globalName(d.Name_)
	}
	for i := range d.TypeParams {
		r.renameTypeParam(&d.TypeParams[i])
	}
	if d.On != nil {
		r.renameType(d.On)
	}
	for i := range d.Fields {
		r.renameField(&d.Fields[i])
	}
	for i := range d.Methods {
		r.renameMethod(&d.Methods[i])
	}
}

// renameField never touches Name: record/tuple/class member field
// names are not subject to global renaming (spec §4.6 step 4).
func (r *renamer) renameField(f *ast.FieldDeclaration) {
	if f.Type != nil {
		r.renameType(f.Type)
	}
	if f.Init != nil {
		r.renameExpr(f.Init)
	}
}

func (r *renamer) renameAccessor(a *ast.AccessorDeclaration) {
	if a.Type != nil {
		r.renameType(a.Type)
	}
	if a.Getter != nil {
		r.pushScope(true)
		for _, st := range a.Getter.Statements {
			r.renameStatement(st)
		}
		r.popScope()
	}
	if a.Setter != nil {
		r.pushScope(true)
		if a.SetParam != "" {
			r.defineLocal(a.SetParam)
		}
		for _, st := range a.Setter.Statements {
			r.renameStatement(st)
		}
		r.popScope()
	}
}

func (r *renamer) renameMethod(m *ast.MethodDeclaration) {
	r.renameFunctionExpression(m.Fn)
}

func (r *renamer) renameTypeParam(tp *ast.TypeParam) {
	if tp.Constraint != nil {
		r.renameType(tp.Constraint)
	}
	if tp.Default != nil {
		r.renameType(tp.Default)
	}
}

// renameFunctionExpression covers named declarations, methods, and
// anonymous arrow/function literals alike: every one opens a fresh
// function-boundary scope for its parameters and body. Accessors are
// handled by renameAccessor instead.
func (r *renamer) renameFunctionExpression(fn *ast.FunctionExpression) {
	r.pushScope(true)
	for i := range fn.TypeParams {
		r.renameTypeParam(&fn.TypeParams[i])
	}
	for i := range fn.Params {
		p := &fn.Params[i]
		if p.Type != nil {
			r.renameType(p.Type)
		}
		if p.Default != nil {
			r.renameExpr(p.Default)
		}
		r.defineLocal(p.Name)
	}
	if fn.ReturnType != nil {
		r.renameType(fn.ReturnType)
	}
	if fn.Body != nil {
		for _, st := range fn.Body.Statements {
			r.renameStatement(st)
		}
	}
	if fn.ExprBody != nil {
		r.renameExpr(fn.ExprBody)
	}
	r.popScope()
}

func (r *renamer) renameExpr(e ast.Expression) ast.Expression {
	switch ex := e.(type) {
	case *ast.Identifier:
		ex.Value = r.resolveName(ex.Value)

	case *ast.Hole, *ast.IntLiteral, *ast.FloatLiteral, *ast.StringLiteral, *ast.BoolLiteral, *ast.NullLiteral:
		// no names

	case *ast.BinaryExpression:
		r.renameExpr(ex.Left)
		r.renameExpr(ex.Right)

	case *ast.UnaryExpression:
		r.renameExpr(ex.Operand)

	case *ast.GroupedExpression:
		r.renameExpr(ex.Inner)

	case *ast.CallExpression:
		r.renameExpr(ex.Callee)
		for _, ta := range ex.TypeArgs {
			r.renameType(ta)
		}
		for _, a := range ex.Args {
			r.renameExpr(a)
		}

	case *ast.NewExpression:
		r.renameType(ex.Class)
		for _, a := range ex.Args {
			r.renameExpr(a)
		}

	case *ast.MemberExpression:
		// Property is a field name, never renamed.
		r.renameExpr(ex.Object)

	case *ast.IndexExpression:
		r.renameExpr(ex.Object)
		r.renameExpr(ex.Index)

	case *ast.AssignExpression:
		r.renameExpr(ex.Target)
		r.renameExpr(ex.Value)

	case *ast.CastExpression:
		r.renameExpr(ex.Expr)
		r.renameType(ex.Type)

	case *ast.IsExpression:
		r.renameExpr(ex.Expr)
		r.renameType(ex.Type)

	case *ast.FunctionExpression:
		r.renameFunctionExpression(ex)

	case *ast.MatchExpression:
		r.renameExpr(ex.Scrutinee)
		for i := range ex.Arms {
			arm := &ex.Arms[i]
			r.pushScope(false)
			r.bindPattern(arm.Pattern, false)
			if arm.Guard != nil {
				r.renameExpr(arm.Guard)
			}
			r.renameExpr(arm.Body)
			r.popScope()
		}

	case *ast.TemplateLiteral:
		for _, sub := range ex.Subs {
			r.renameExpr(sub)
		}
		if ex.Tag != nil {
			r.renameExpr(ex.Tag)
		}

	case *ast.RecordLiteral:
		for i := range ex.Fields {
			f := &ex.Fields[i]
			if f.Computed != nil {
				r.renameExpr(f.Computed)
			}
			switch {
			case f.Value != nil:
				r.renameExpr(f.Value)
			case f.Shorthand:
				// `{x}` reads a name by the field's own Key; since Key
				// is the record's field name and must not be renamed,
				// splice in an explicit Value identifier so the read
				// follows the renamed binding instead.
				if resolved := r.resolveName(f.Key); resolved != f.Key {
					f.Value = &ast.Identifier{Value: resolved}
				}
			}
			if f.Spread != nil {
				r.renameExpr(f.Spread)
			}
		}

	case *ast.TupleLiteral:
		for _, el := range ex.Elements {
			r.renameExpr(el)
		}

	case *ast.UnboxedTupleLiteral:
		for _, el := range ex.Elements {
			r.renameExpr(el)
		}

	case *ast.ArrayLiteral:
		for _, el := range ex.Elements {
			r.renameExpr(el)
		}
	}
	return e
}

func (r *renamer) renameType(t ast.TypeAnnotation) ast.TypeAnnotation {
	switch ta := t.(type) {
	case *ast.NamedTypeAnnotation:
		if !ta.IsThis {
			ta.Name = r.resolveName(ta.Name)
		}
		for _, arg := range ta.TypeArgs {
			r.renameType(arg)
		}

	case *ast.UnionTypeAnnotation:
		for _, alt := range ta.Alternatives {
			r.renameType(alt)
		}

	case *ast.RecordTypeAnnotation:
		for i := range ta.Fields {
			r.renameType(ta.Fields[i].Type)
		}

	case *ast.TupleTypeAnnotation:
		for _, el := range ta.Elements {
			r.renameType(el)
		}

	case *ast.UnboxedTupleTypeAnnotation:
		for _, el := range ta.Elements {
			r.renameType(el)
		}

	case *ast.FunctionTypeAnnotation:
		for _, p := range ta.Params {
			r.renameType(p)
		}
		r.renameType(ta.ReturnType)

	case *ast.ArrayTypeAnnotation:
		r.renameType(ta.Element)
	}
	return t
}

// bindPattern walks a binding pattern (let/var destructuring or a
// match arm), renaming IdentifierPattern/AsPattern names the same way
// renameStatement renames a VarDeclaration's bare identifier: global
// at top level, local everywhere else. Record/tuple/class field keys
// are never renamed; only the names they bind are.
func (r *renamer) bindPattern(pattern ast.Pattern, topLevel bool) {
	switch p := pattern.(type) {
	case *ast.IdentifierPattern:
		if topLevel {
			p.Name = r.globalName(p.Name)
		} else {
			r.defineLocal(p.Name)
		}

	case *ast.WildcardPattern:
		// binds nothing

	case *ast.RecordPattern:
		for i := range p.Fields {
			r.bindPatternField(&p.Fields[i], topLevel)
		}
		if p.Rest != "" {
			if topLevel {
				p.Rest = r.globalName(p.Rest)
			} else {
				r.defineLocal(p.Rest)
			}
		}

	case *ast.TuplePattern:
		for _, el := range p.Elements {
			r.bindPattern(el, topLevel)
		}

	case *ast.UnboxedTuplePattern:
		for _, el := range p.Elements {
			r.bindPattern(el, topLevel)
		}

	case *ast.ClassPattern:
		p.ClassName = r.resolveName(p.ClassName)
		for i := range p.Fields {
			r.bindPatternField(&p.Fields[i], topLevel)
		}

	case *ast.AsPattern:
		r.bindPattern(p.Inner, topLevel)
		if topLevel {
			p.Name = r.globalName(p.Name)
		} else {
			r.defineLocal(p.Name)
		}

	case *ast.LiteralPattern:
		r.renameExpr(p.Literal)
	}
}

func (r *renamer) bindPatternField(f *ast.RecordPatternField, topLevel bool) {
	if f.Default != nil {
		r.renameExpr(f.Default)
	}
	if f.Sub != nil {
		r.bindPattern(f.Sub, topLevel)
		return
	}
	// The field's own Key/Rename bind a name implicitly; top-level
	// destructuring of this shape is diagnosed as unsupported by the
	// checker, so only the local-scope case needs to track anything.
	if !topLevel {
		name := f.Rename
		if name == "" {
			name = f.Key
		}
		r.defineLocal(name)
	}
}
