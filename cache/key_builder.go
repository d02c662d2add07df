package cache

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// KeySeparator delimits cache key segments.
const KeySeparator = "::"

// KeyBuilder produces stable cache keys from a namespace, an operation name
// and the operation's arguments. Stability matters: the same logical read
// must map to the same key across calls or the cache never hits.
type KeyBuilder interface {
	Key(namespace, op string, args ...any) string
}

type keyBuilder struct{}

// NewKeyBuilder returns the default deterministic key builder.
func NewKeyBuilder() KeyBuilder {
	return keyBuilder{}
}

func (b keyBuilder) Key(namespace, op string, args ...any) string {
	parts := make([]string, 0, 2+len(args))
	parts = append(parts, namespace, op)
	for _, arg := range args {
		parts = append(parts, b.segment(arg))
	}
	return strings.Join(parts, KeySeparator)
}

// segment renders one argument deterministically.
func (b keyBuilder) segment(v any) string {
	if v == nil {
		return "nil"
	}

	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
		return b.segment(rv.Elem().Interface())

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "[]"
		}
		elems := make([]string, rv.Len())
		for i := range elems {
			elems[i] = b.segment(rv.Index(i).Interface())
		}
		return "[" + strings.Join(elems, ",") + "]"

	case reflect.Map:
		// Sorted pairs keep map iteration order out of the key.
		pairs := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			pairs = append(pairs, b.segment(iter.Key().Interface())+"="+b.segment(iter.Value().Interface()))
		}
		sort.Strings(pairs)
		return "{" + strings.Join(pairs, ",") + "}"

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%v", v)

	default:
		data, err := json.Marshal(v)
		if err != nil {
			// Last resort: type name only. Loses precision but never panics.
			return fmt.Sprintf("!%T", v)
		}
		return string(data)
	}
}
