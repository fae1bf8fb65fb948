package plural

import "fmt"

// Func maps a count to a plural form index.
type Func func(n int) int

// Default is the two-form rule used when a catalog has no usable Plural-Forms header:
// form 0 for exactly one, form 1 for everything else.
var Default Func = func(n int) int {
	if n == 1 {
		return 0
	}
	return 1
}

// Compile parses expr and returns a Func whose result is always within [0, nplurals).
// Results outside that range and division by zero select form 0.
func Compile(expr string, nplurals int) (Func, error) {
	if nplurals < 1 {
		return nil, fmt.Errorf("%w: nplurals must be positive, got %d", ErrInvalidExpression, nplurals)
	}

	root, err := parse(expr)
	if err != nil {
		return nil, err
	}

	limit := int64(nplurals)
	return func(n int) int {
		v, ok := root.eval(int64(n))
		if !ok || v < 0 || v >= limit {
			return 0
		}
		return int(v)
	}, nil
}

// MustCompile is like Compile but panics on error.
// Intended for rules known at compile time.
func MustCompile(expr string, nplurals int) Func {
	fn, err := Compile(expr, nplurals)
	if err != nil {
		panic(err)
	}
	return fn
}
