package glctx

import "fmt"

// Value enumerates the semantic types a parameter query can produce.
type Value interface {
	int | int64 | bool | float32 | float64 | Color
}

func inactiveErr(pname uint32) error {
	return fmt.Errorf("%w: parameter %#04x", ErrInactiveContext, pname)
}

// Get reads a single parameter of the context's native state, converting the
// raw result to T.
//
// If the context is not current, Get fails with ErrInactiveContext and
// issues no native call. Otherwise it issues exactly one native query.
// Boolean results follow GL's zero-means-false convention; a Color is read
// as four consecutive floats in red, green, blue, alpha order with no
// normalization.
func Get[T Value](c Context, pname uint32) (T, error) {
	var out T
	if !c.Current() {
		return out, inactiveErr(pname)
	}
	api := c.api()
	switch p := any(&out).(type) {
	case *int:
		var v int32
		api.GetIntegerv(pname, &v)
		*p = int(v)
	case *int64:
		api.GetInteger64v(pname, p)
	case *bool:
		var v uint8
		api.GetBooleanv(pname, &v)
		*p = v != 0
	case *float32:
		api.GetFloatv(pname, p)
	case *float64:
		api.GetDoublev(pname, p)
	case *Color:
		api.GetFloatv(pname, &p.R)
	}
	if err := checkError(api); err != nil {
		return out, err
	}
	return out, nil
}
