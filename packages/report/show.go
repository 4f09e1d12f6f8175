package report

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// maxDepth bounds recursion through pointers and nested containers.
const maxDepth = 32

// Shower is implemented by types that want to control how they appear in
// failure messages.
type Shower interface {
	Show() string
}

// Show renders v deterministically. An optional wrapper of exactly two
// characters encloses the rendering, eg. Show(3, "[]") gives "[3]".
func Show(v any, wrapper ...string) string {
	s := display(reflect.ValueOf(v), 0)
	if len(wrapper) == 0 || len(wrapper[0]) != 2 {
		return s
	}
	return wrapper[0][:1] + s + wrapper[0][1:]
}

var (
	showerType   = reflect.TypeOf((*Shower)(nil)).Elem()
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

func display(v reflect.Value, depth int) string {
	if !v.IsValid() {
		return "null"
	}
	if depth > maxDepth {
		return "..."
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return "null"
		}
	}

	if v.CanInterface() {
		switch {
		case v.Type().Implements(showerType):
			return v.Interface().(Shower).Show()
		case v.Type().Implements(errorType):
			return v.Interface().(error).Error()
		case v.Type().Implements(stringerType):
			return v.Interface().(fmt.Stringer).String()
		}
	}

	switch v.Kind() {
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	case reflect.Ptr:
		return "&" + display(v.Elem(), depth+1)
	case reflect.Interface:
		return display(v.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = display(v.Index(i), depth+1)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		parts := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			parts = append(parts, display(iter.Key(), depth+1)+"="+display(iter.Value(), depth+1))
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	case reflect.Struct:
		t := v.Type()
		parts := make([]string, t.NumField())
		for i := range parts {
			parts[i] = t.Field(i).Name + ":" + display(v.Field(i), depth+1)
		}
		return typeName(t) + "{" + strings.Join(parts, ", ") + "}"
	default:
		return typeName(v.Type())
	}
}

func typeName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
