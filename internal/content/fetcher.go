package content

import (
	"context"
	"reflect"
)

// Fetcher runs a query against a content store and decodes the result into
// out. A null result leaves out untouched and returns nil.
type Fetcher interface {
	Fetch(ctx context.Context, query Query, params Params, out any) error
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, query Query, params Params, out any) error

func (f FetcherFunc) Fetch(ctx context.Context, query Query, params Params, out any) error {
	return f(ctx, query, params, out)
}

// Get fetches query into a fresh T. The bool reports whether anything came
// back: nil slices, empty slices, nil pointers and zero structs count as no data.
func Get[T any](ctx context.Context, fetcher Fetcher, query Query, params Params) (T, bool, error) {
	var out T
	if fetcher == nil {
		return out, false, nil
	}
	if err := fetcher.Fetch(ctx, query, params, &out); err != nil {
		var zero T
		return zero, false, err
	}
	return out, hasData(reflect.ValueOf(&out).Elem()), nil
}

func hasData(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !v.IsNil()
	default:
		return !v.IsZero()
	}
}
