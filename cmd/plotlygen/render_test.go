package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStruct_ParamsFor(t *testing.T) {
	s := Struct{Name: "Contour", TypeParams: []string{"Z", "X", "Y"}}

	require.Equal(t, "[X any]", s.ParamsFor("*X"))
	require.Equal(t, "[Z any]", s.ParamsFor("[]Z"))
	require.Equal(t, "", s.ParamsFor("common.ZSmooth"))
	require.Equal(t, "[X, Y any]", s.ParamsFor("map[X]Y"))
}

func TestStruct_Instance(t *testing.T) {
	require.Equal(t, "Scatter[X, Y]", Struct{Name: "Scatter", TypeParams: []string{"X", "Y"}}.Instance())
	require.Equal(t, "Font", Struct{Name: "Font"}.Instance())
	require.Equal(t, "f", Struct{Name: "Font"}.Receiver())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("trace")
	require.NoError(t, err)
	require.Equal(t, KindTrace, k)

	_, err = ParseKind("chart")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestRender_Setters(t *testing.T) {
	font := Struct{
		Name: "Font",
		Fields: []Field{
			{Name: "Family", Key: "family", Type: "*string", Elem: "string", Kind: FieldValuePtr},
			{Name: "Size", Key: "size", Type: "*Dim[int]", Elem: "int", Kind: FieldDim, Matrix: true},
			{Name: "Tags", Key: "tags", Type: "[]string", Kind: FieldDirect},
			{Name: "Pad", Key: "pad", Type: "*Pad", Elem: "Pad", Kind: FieldStructPtr},
		},
	}

	files, err := Render("common", []Struct{font}, KindCommon, "")
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, settersFile, files[0].Name)

	src := string(files[0].Source)
	require.Contains(t, src, "// Code generated by plotlygen. DO NOT EDIT.")
	require.Contains(t, src, "func (f *Font) WithFamily(value string) *Font {\n\tf.Family = &value\n\treturn f\n}")
	require.Contains(t, src, "func (f *Font) WithSize(value int) *Font {\n\tf.Size = Scalar(value)")
	require.Contains(t, src, "func (f *Font) WithSizeArray(values []int) *Font {\n\tf.Size = Vector(values)")
	require.Contains(t, src, "func (f *Font) WithSizeMatrix(values [][]int) *Font {\n\tf.Size = Matrix(values)")
	require.Contains(t, src, "func (f *Font) WithTags(value []string) *Font {\n\tf.Tags = value")
	require.Contains(t, src, "func (f *Font) WithPad(value *Pad) *Font {\n\tf.Pad = value")
}

func TestRender_RelayoutTypeMissing(t *testing.T) {
	_, err := Render("layout", nil, KindLayout, "Layout")
	require.Error(t, err)
}
