package main

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/tools/go/packages"
)

const (
	commonPath = "github.com/raykavin/goplotly/pkg/common"
	dimName    = "Dim"
)

var ErrNoPackage = errors.New("no Go package found")

// FieldKind decides which setters a field gets.
type FieldKind int

const (
	// FieldDirect is assigned as is (slices, interfaces, values).
	FieldDirect FieldKind = iota
	// FieldValuePtr is a pointer to a scalar; the setter takes the value.
	FieldValuePtr
	// FieldStructPtr is a pointer to a struct; the setter takes the pointer.
	FieldStructPtr
	// FieldDim is a *common.Dim[T]; scalar, array and optionally matrix setters.
	FieldDim
)

type Field struct {
	Name   string
	Key    string
	Type   string
	Elem   string
	Kind   FieldKind
	Matrix bool
}

// ParamType is the type of the value accepted by the scalar setter.
func (f Field) ParamType() string {
	switch f.Kind {
	case FieldDim, FieldValuePtr:
		return f.Elem
	default:
		return f.Type
	}
}

type Struct struct {
	Name       string
	TypeParams []string
	Fields     []Field
	IsTrace    bool
	pos        token.Position
}

// Receiver is the method receiver name.
func (s Struct) Receiver() string {
	return strings.ToLower(s.Name[:1])
}

// Instance is the struct name with its type parameters, e.g. "Scatter[X, Y]".
func (s Struct) Instance() string {
	if len(s.TypeParams) == 0 {
		return s.Name
	}
	return s.Name + "[" + strings.Join(s.TypeParams, ", ") + "]"
}

// ParamsFor returns the type parameter declaration needed by a free
// function mentioning typ, e.g. "[X any]".
func (s Struct) ParamsFor(typ string) string {
	used := lo.Filter(s.TypeParams, func(p string, _ int) bool {
		return mentions(typ, p)
	})
	if len(used) == 0 {
		return ""
	}
	return "[" + strings.Join(used, ", ") + " any]"
}

type Package struct {
	Name    string
	Structs []Struct
}

// Load type-checks the package in dir and collects the structs eligible for
// setters: every field carries a json tag and none is embedded.
func Load(dir string) (*Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, ErrNoPackage
	}

	pkg := pkgs[0]
	if pkg.Types == nil {
		return nil, fmt.Errorf("%w in %s", ErrNoPackage, dir)
	}

	out := &Package{Name: pkg.Name}
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				st, ok := ts.Type.(*ast.StructType)
				if !ok || !ts.Name.IsExported() {
					continue
				}
				s, ok := collectStruct(pkg, ts, st)
				if ok {
					out.Structs = append(out.Structs, s)
				}
			}
		}
	}

	sort.SliceStable(out.Structs, func(i, j int) bool {
		a, b := out.Structs[i].pos, out.Structs[j].pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Offset < b.Offset
	})
	return out, nil
}

func collectStruct(pkg *packages.Package, ts *ast.TypeSpec, st *ast.StructType) (Struct, bool) {
	s := Struct{
		Name: ts.Name.Name,
		pos:  pkg.Fset.Position(ts.Pos()),
	}
	if ts.TypeParams != nil {
		for _, field := range ts.TypeParams.List {
			for _, name := range field.Names {
				s.TypeParams = append(s.TypeParams, name.Name)
			}
		}
	}

	if len(st.Fields.List) == 0 {
		return s, false
	}

	for _, astField := range st.Fields.List {
		if len(astField.Names) == 0 || astField.Tag == nil {
			return s, false
		}
		tag := reflect.StructTag(strings.Trim(astField.Tag.Value, "`"))
		jsonTag, ok := tag.Lookup("json")
		if !ok {
			return s, false
		}

		typ := pkg.TypesInfo.TypeOf(astField.Type)
		if astField.Names[0].Name == "Type" && isCommonNamed(typ, "PlotType") {
			s.IsTrace = true
		}

		opts := strings.Split(tag.Get("plotly"), ",")
		if lo.Contains(opts, "-") {
			continue
		}

		for _, name := range astField.Names {
			f := Field{
				Name:   name.Name,
				Key:    strings.Split(jsonTag, ",")[0],
				Type:   types.ExprString(astField.Type),
				Matrix: lo.Contains(opts, "matrix"),
			}
			classify(&f, astField.Type, typ)
			s.Fields = append(s.Fields, f)
		}
	}
	return s, true
}

func classify(f *Field, expr ast.Expr, typ types.Type) {
	ptr, ok := typ.(*types.Pointer)
	if !ok {
		f.Kind = FieldDirect
		return
	}
	star := expr.(*ast.StarExpr)

	if isCommonNamed(ptr.Elem(), dimName) {
		f.Kind = FieldDim
		f.Elem = types.ExprString(star.X.(*ast.IndexExpr).Index)
		return
	}

	f.Elem = types.ExprString(star.X)
	if _, isParam := ptr.Elem().(*types.TypeParam); !isParam {
		if _, isStruct := ptr.Elem().Underlying().(*types.Struct); isStruct {
			f.Kind = FieldStructPtr
			return
		}
	}
	f.Kind = FieldValuePtr
}

func isCommonNamed(typ types.Type, name string) bool {
	named, ok := typ.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == name && obj.Pkg() != nil && obj.Pkg().Path() == commonPath
}

func mentions(typ, ident string) bool {
	fields := strings.FieldsFunc(typ, func(r rune) bool {
		return !(r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	})
	return lo.Contains(fields, ident)
}

func filterStructs(structs []Struct, names []string) []Struct {
	return lo.Filter(structs, func(s Struct, _ int) bool {
		return lo.Contains(names, s.Name)
	})
}
