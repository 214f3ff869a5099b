package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"
)

type Kind string

const (
	KindCommon Kind = "common"
	KindTrace  Kind = "trace"
	KindLayout Kind = "layout"
)

var ErrUnknownKind = errors.New("unknown package kind")

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindCommon, KindTrace, KindLayout:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

const (
	settersFile  = "zz_generated.setters.go"
	restyleFile  = "zz_generated.restyle.go"
	relayoutFile = "zz_generated.relayout.go"
)

// File is one generated, formatted source file.
type File struct {
	Name   string
	Source []byte
	Count  int
}

func (f File) Write(dir string) error {
	path := filepath.Join(dir, f.Name)
	if err := os.WriteFile(path, f.Source, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

type templateData struct {
	Package string
	Common  string
	Structs []Struct
	Struct  Struct
}

// Render produces the files for one package. Trace packages also get the
// restyle helpers, layout packages the relayout helpers of relayoutType.
func Render(pkgName string, structs []Struct, kind Kind, relayoutType string) ([]File, error) {
	data := templateData{Package: pkgName, Common: "common.", Structs: structs}
	if kind == KindCommon {
		data.Common = ""
	}

	setters, err := execute(settersFile, settersTemplate, data)
	if err != nil {
		return nil, err
	}
	files := []File{{Name: settersFile, Source: setters, Count: len(structs)}}

	switch kind {
	case KindTrace:
		var traces []Struct
		for _, s := range structs {
			if s.IsTrace {
				traces = append(traces, s)
			}
		}
		data.Structs = traces
		src, err := execute(restyleFile, restyleTemplate, data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: restyleFile, Source: src, Count: len(traces)})
	case KindLayout:
		for _, s := range structs {
			if s.Name == relayoutType {
				data.Struct = s
			}
		}
		if data.Struct.Name == "" {
			return nil, fmt.Errorf("relayout type %q not found", relayoutType)
		}
		src, err := execute(relayoutFile, relayoutTemplate, data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: relayoutFile, Source: src, Count: 1})
	}
	return files, nil
}

func execute(name, text string, data templateData) ([]byte, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	// resolves the common/color imports and gofmts the result
	src, err := imports.Process(name, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format %s: %w\n%s", name, err, buf.Bytes())
	}
	return src, nil
}

const header = `// Code generated by plotlygen. DO NOT EDIT.

package {{.Package}}
`

const settersTemplate = header + `
{{- $common := .Common}}
{{- range $s := .Structs}}
{{- $r := $s.Receiver}}
{{- range $f := $s.Fields}}
{{- if eq $f.Kind 3}}

// With{{$f.Name}} sets "{{$f.Key}}" to a single value.
func ({{$r}} *{{$s.Instance}}) With{{$f.Name}}(value {{$f.Elem}}) *{{$s.Instance}} {
	{{$r}}.{{$f.Name}} = {{$common}}Scalar(value)
	return {{$r}}
}

// With{{$f.Name}}Array sets "{{$f.Key}}" to one value per item.
func ({{$r}} *{{$s.Instance}}) With{{$f.Name}}Array(values []{{$f.Elem}}) *{{$s.Instance}} {
	{{$r}}.{{$f.Name}} = {{$common}}Vector(values)
	return {{$r}}
}
{{- if $f.Matrix}}

// With{{$f.Name}}Matrix sets "{{$f.Key}}" to a grid of values.
func ({{$r}} *{{$s.Instance}}) With{{$f.Name}}Matrix(values [][]{{$f.Elem}}) *{{$s.Instance}} {
	{{$r}}.{{$f.Name}} = {{$common}}Matrix(values)
	return {{$r}}
}
{{- end}}
{{- else if eq $f.Kind 1}}

// With{{$f.Name}} sets "{{$f.Key}}".
func ({{$r}} *{{$s.Instance}}) With{{$f.Name}}(value {{$f.Elem}}) *{{$s.Instance}} {
	{{$r}}.{{$f.Name}} = &value
	return {{$r}}
}
{{- else}}

// With{{$f.Name}} sets "{{$f.Key}}".
func ({{$r}} *{{$s.Instance}}) With{{$f.Name}}(value {{$f.Type}}) *{{$s.Instance}} {
	{{$r}}.{{$f.Name}} = value
	return {{$r}}
}
{{- end}}
{{- end}}
{{- end}}
`

const restyleTemplate = header + `
{{- range $s := .Structs}}
{{- range $f := $s.Fields}}
{{- $p := $f.ParamType}}
{{- $tp := $s.ParamsFor $p}}

// {{$s.Name}}Modify{{$f.Name}} restyles "{{$f.Key}}" with one value per trace.
func {{$s.Name}}Modify{{$f.Name}}{{$tp}}(values []{{$p}}) Restyle {
	return NewRestyle("{{$f.Key}}", values)
}

// {{$s.Name}}ModifyAll{{$f.Name}} restyles "{{$f.Key}}" on every trace.
func {{$s.Name}}ModifyAll{{$f.Name}}{{$tp}}(value {{$p}}) Restyle {
	return NewRestyleAll("{{$f.Key}}", value)
}
{{- end}}
{{- end}}
`

const relayoutTemplate = header + `
{{- $s := .Struct}}
{{- range $f := $s.Fields}}

// Modify{{$f.Name}} relayouts "{{$f.Key}}".
func Modify{{$f.Name}}(value {{$f.ParamType}}) Relayout {
	return NewRelayout("{{$f.Key}}", value)
}
{{- end}}
`
