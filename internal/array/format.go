package array

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gostdlib/iarray/internal/seq"
	"github.com/gostdlib/iarray/internal/sets"
)

// join renders the elements of h separated by sep. seen holds the containers being rendered
// further up, a container that holds itself renders as "" the second time.
func join(h holder, sep string, seen *sets.Set[identity]) string {
	var b strings.Builder
	first := true
	h.eachAny(func(v any) bool {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(formatElem(v, seen))
		return true
	})
	return b.String()
}

// formatElem renders one element. Arrays, slices and Go arrays render as their elements joined
// by ",". nil renders as "".
func formatElem(v any, seen *sets.Set[identity]) string {
	if noValue(v) {
		return ""
	}

	rv := reflect.ValueOf(v)
	if h, ok := v.(holder); ok {
		return nested(identity{p: rv.UnsafePointer(), t: rv.Type()}, h, seen)
	}
	switch v.(type) {
	case fmt.Stringer, error:
		return seq.Format(v)
	}

	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return ""
		}
		return nested(identity{p: rv.UnsafePointer(), t: rv.Type(), len: rv.Len()}, reflectHolder{rv}, seen)
	case reflect.Array:
		return join(reflectHolder{rv}, ",", seen)
	}
	return seq.Format(v)
}

func nested(id identity, h holder, seen *sets.Set[identity]) string {
	if !seen.Insert(id) {
		return ""
	}
	defer seen.Remove(id)
	return join(h, ",", seen)
}

// noValue reports if v is nil or a nil pointer. These have no value, they render as "" and sort last.
func noValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// reflectHolder reads the elements of a slice or Go array.
type reflectHolder struct {
	v reflect.Value
}

func (r reflectHolder) eachAny(yield func(v any) bool) {
	for i := range r.v.Len() {
		e := r.v.Index(i)
		if !e.CanInterface() {
			return
		}
		if !yield(e.Interface()) {
			return
		}
	}
}

func (r reflectHolder) length() int {
	return r.v.Len()
}

// sortKey is the key of the default sort order.
func sortKey[T any](v T) (string, bool) {
	a := any(v)
	if noValue(a) {
		return "", true
	}
	var seen sets.Set[identity]
	return formatElem(a, &seen), false
}
