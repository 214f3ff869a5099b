package common

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// DeepCopy returns a deep copy of src, or nil when src is nil. Channels and
// unsafe pointers are left zero in the copy: they have no JSON form.
//
// Any other copy failure means the type graph holds something DeepCopy cannot
// reproduce, and it panics rather than hand back a copy that shares memory
// with src.
func DeepCopy[T any](src *T) *T {
	if src == nil {
		return nil
	}
	dst := new(T)
	if err := deepcopy.Copy(dst, src, deepcopy.IgnoreNonCopyableTypes(true)); err != nil {
		panic(fmt.Errorf("deep copy of %T: %w", src, err))
	}
	return dst
}
