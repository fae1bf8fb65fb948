package plural

import (
	"fmt"
	"strconv"
	"strings"
)

// Forms is a parsed Plural-Forms header value.
type Forms struct {
	NPlurals int
	Expr     string
	Func     Func
}

// DefaultForms returns the rule applied when a catalog does not declare one.
func DefaultForms() Forms {
	return Forms{NPlurals: 2, Expr: "n != 1", Func: Default}
}

// ParseForms parses a header value of the form "nplurals=K; plural=EXPR;".
// Field names are matched case-insensitively and may appear in any order.
func ParseForms(header string) (Forms, error) {
	var (
		forms    Forms
		haveN    bool
		haveExpr bool
	)

	for part := range strings.SplitSeq(header, ";") {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(name)) {
		case "nplurals":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return Forms{}, fmt.Errorf("%w: bad nplurals %q", ErrInvalidForms, value)
			}
			forms.NPlurals = n
			haveN = true
		case "plural":
			forms.Expr = value
			haveExpr = true
		}
	}

	if !haveN {
		return Forms{}, fmt.Errorf("%w: nplurals missing", ErrInvalidForms)
	}
	if !haveExpr || forms.Expr == "" {
		return Forms{}, fmt.Errorf("%w: plural expression missing", ErrInvalidForms)
	}

	fn, err := Compile(forms.Expr, forms.NPlurals)
	if err != nil {
		return Forms{}, err
	}
	forms.Func = fn

	return forms, nil
}
