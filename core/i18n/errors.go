package i18n

import "errors"

var (
	ErrEmptyDomainName  = errors.New("domain name cannot be empty")
	ErrNilTranslator    = errors.New("translator is not provided")
	ErrInvalidManifest  = errors.New("invalid catalog manifest")
	ErrUnknownLocale    = errors.New("unknown locale")
	ErrInvalidLocaleTag = errors.New("invalid locale tag")
)
