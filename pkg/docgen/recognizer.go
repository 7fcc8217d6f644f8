package docgen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"
)

// basicTypes are the underlying types an enumerated type may be declared over.
var basicTypes = map[string]struct{}{
	"int": {}, "int8": {}, "int16": {}, "int32": {}, "int64": {},
	"uint": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {},
	"byte": {}, "rune": {}, "string": {},
}

// variant is one constant of an enumerated type.
type variant struct {
	name string
	doc  string
}

// recognition is what was documented from one file.
type recognition struct {
	typeName string
	entries  []Entry
	warnings []string
}

// recognize documents the primary type of file when it is an enum declaring the
// capability of target. Files that do not qualify return one of the errNo* / errNotEnum
// errors.
func recognize(file *ast.File, target Target) (recognition, error) {
	ts := primaryType(file)
	if ts == nil {
		return recognition{}, errNoPrimaryType
	}
	rec := recognition{typeName: ts.Name.Name}

	if ts.TypeParams != nil || ts.Assign.IsValid() || !isBasicType(ts.Type) {
		return rec, errNotEnum
	}

	variants := enumVariants(file, rec.typeName)
	if !declaresCapability(file, rec.typeName, target.Interface, variants) {
		return rec, errNoCapability
	}
	if len(variants) == 0 {
		return rec, errNoVariants
	}

	literals, warning := caseLiterals(file, rec.typeName, target.Method, variants)
	if warning != "" {
		rec.warnings = append(rec.warnings, warning)
	}

	for _, v := range variants {
		name, err := literals.valueOf(v.name)
		if err != nil {
			rec.warnings = append(rec.warnings, fmt.Sprintf("%s.%s: %v", rec.typeName, v.name, err))
		}
		rec.entries = append(rec.entries, Entry{Name: name, Description: v.doc})
	}
	return rec, nil
}

// primaryType returns the first type declared in file.
func primaryType(file *ast.File) *ast.TypeSpec {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok {
				return ts
			}
		}
	}
	return nil
}

func isBasicType(expr ast.Expr) bool {
	ident, ok := expr.(*ast.Ident)
	if !ok {
		return false
	}
	_, ok = basicTypes[ident.Name]
	return ok
}

// enumVariants returns the constants of type typeName in declaration order. Constants
// without an explicit expression list inherit the type of the preceding one, as in Go.
func enumVariants(file *ast.File, typeName string) []variant {
	var variants []variant
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			continue
		}

		current := ""
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			if vs.Type != nil || len(vs.Values) > 0 {
				current = identName(vs.Type)
			}
			if current != typeName {
				continue
			}

			doc := commentText(vs.Doc, vs.Comment)
			if doc == "" && !gd.Lparen.IsValid() {
				doc = commentText(gd.Doc, nil)
			}
			for _, n := range vs.Names {
				if n.Name == "_" {
					continue
				}
				variants = append(variants, variant{name: n.Name, doc: doc})
			}
		}
	}
	return variants
}

// declaresCapability looks for a blank assignment "var _ <pkg>.<iface> = <value>" whose
// value is of type typeName.
func declaresCapability(file *ast.File, typeName, iface string, variants []variant) bool {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok || vs.Type == nil || len(vs.Names) != len(vs.Values) {
				continue
			}
			if interfaceName(vs.Type) != iface {
				continue
			}
			for i, n := range vs.Names {
				if n.Name == "_" && valueOfType(vs.Values[i], typeName, variants) {
					return true
				}
			}
		}
	}
	return false
}

// valueOfType recognizes T(x), (*T)(x), T{} and a variant of T.
func valueOfType(expr ast.Expr, typeName string, variants []variant) bool {
	switch e := expr.(type) {
	case *ast.CallExpr:
		fun := ast.Unparen(e.Fun)
		if star, ok := fun.(*ast.StarExpr); ok {
			fun = star.X
		}
		return identName(fun) == typeName
	case *ast.CompositeLit:
		return identName(e.Type) == typeName
	case *ast.Ident:
		for _, v := range variants {
			if v.name == e.Name {
				return true
			}
		}
	}
	return false
}

// literalCases maps variant names to the statements producing their value: the body of
// the case clause listing them, or the whole method body of a single-variant enum.
type literalCases map[string][]ast.Stmt

// caseLiterals finds the capability method of typeName and indexes the clauses of the
// switch opening its body. A single-variant enum may return its literal directly. The
// returned warning explains why no clause is available.
func caseLiterals(file *ast.File, typeName, method string, variants []variant) (literalCases, string) {
	fn := findMethod(file, typeName, method)
	if fn == nil {
		return nil, fmt.Sprintf("%s has no %s method", typeName, method)
	}
	if fn.Body == nil || len(fn.Body.List) == 0 {
		return nil, fmt.Sprintf("%s.%s has no statements", typeName, method)
	}

	first := fn.Body.List[0]
	if _, ok := first.(*ast.ReturnStmt); ok && len(variants) == 1 {
		return literalCases{variants[0].name: fn.Body.List}, ""
	}
	sw, ok := first.(*ast.SwitchStmt)
	if !ok {
		return nil, fmt.Sprintf("%s.%s does not start with a switch statement", typeName, method)
	}

	cases := literalCases{}
	for _, stmt := range sw.Body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue
		}
		for _, expr := range clause.List {
			if name := identName(expr); name != "" {
				if _, seen := cases[name]; !seen {
					cases[name] = clause.Body
				}
			}
		}
	}
	return cases, ""
}

// valueOf returns the string literal returned for a variant.
func (c literalCases) valueOf(variant string) (string, error) {
	if c == nil {
		return "", errors.New("no literal available")
	}
	body, ok := c[variant]
	if !ok {
		return "", errors.New("no case clause")
	}
	if len(body) == 0 {
		return "", errors.New("case clause has no statements")
	}
	ret, ok := body[0].(*ast.ReturnStmt)
	if !ok {
		return "", fmt.Errorf("statement %T is not a return statement", body[0])
	}
	if len(ret.Results) != 1 {
		return "", fmt.Errorf("return statement has %d results", len(ret.Results))
	}
	lit, ok := ret.Results[0].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", fmt.Errorf("returned expression %T is not a string literal", ret.Results[0])
	}
	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", fmt.Errorf("unquote %s: %w", lit.Value, err)
	}
	return value, nil
}

func findMethod(file *ast.File, typeName, method string) *ast.FuncDecl {
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || len(fn.Recv.List) != 1 || fn.Name.Name != method {
			continue
		}
		recv := fn.Recv.List[0].Type
		if star, ok := recv.(*ast.StarExpr); ok {
			recv = star.X
		}
		if identName(recv) == typeName {
			return fn
		}
	}
	return nil
}

// identName returns the name of a plain identifier, or "".
func identName(expr ast.Expr) string {
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

// interfaceName returns the unqualified name of a possibly package-qualified type.
func interfaceName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Sel.Name
	}
	return ""
}

// commentText returns the first non-empty comment group collapsed to a single line.
func commentText(groups ...*ast.CommentGroup) string {
	for _, g := range groups {
		if g == nil {
			continue
		}
		if text := strings.Join(strings.Fields(g.Text()), " "); text != "" {
			return text
		}
	}
	return ""
}
