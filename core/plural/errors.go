package plural

import "errors"

var (
	// ErrInvalidExpression indicates the plural expression could not be parsed.
	ErrInvalidExpression = errors.New("invalid plural expression")

	// ErrInvalidForms indicates the Plural-Forms header is missing nplurals or plural.
	ErrInvalidForms = errors.New("invalid plural forms header")
)
