// Package plural compiles gettext Plural-Forms expressions into Go functions.
//
// A catalog header carries a line such as
//
//	Plural-Forms: nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);
//
// The expression is a small C subset over the single variable n: integer literals,
// arithmetic (+ - * / %), comparisons (== != < <= > >=), logical operators (&& || !),
// parentheses and the ternary operator. Compile turns it into a Func that maps a count
// to a plural form index:
//
//	fn, err := plural.Compile("n != 1", 2)
//	if err != nil {
//		return err
//	}
//	fn(1) // 0
//	fn(5) // 1
//
// A compiled Func never panics. Division by zero and results outside [0, nplurals)
// select form 0, so a broken header degrades to the first form instead of failing
// the lookup.
//
// ParseForms handles the whole header value and returns both the form count and the
// compiled rule:
//
//	forms, err := plural.ParseForms("nplurals=2; plural=(n != 1);")
//	if err != nil {
//		forms = plural.DefaultForms()
//	}
//	idx := forms.Func(3) // 1
package plural
