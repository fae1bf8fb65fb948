package catalog

import (
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// parseHeaders reads "Key: Value" lines. Keys are lower-cased; later lines win.
func parseHeaders(meta string) map[string]string {
	headers := make(map[string]string)
	for line := range strings.SplitSeq(meta, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers
}

// charsetOf extracts the charset parameter from a Content-Type value.
func charsetOf(contentType string) string {
	for param := range strings.SplitSeq(contentType, ";") {
		name, value, ok := strings.Cut(param, "=")
		if ok && strings.EqualFold(strings.TrimSpace(name), "charset") {
			return strings.Trim(strings.TrimSpace(value), `"`)
		}
	}
	return ""
}

type transcoder func([]byte) (string, error)

// newTranscoder returns a converter to UTF-8 for charset, or nil when the text can be
// used as is: the charset is UTF-8, empty, or not a known encoding (for instance the
// "CHARSET" placeholder left by xgettext).
func newTranscoder(charset string) transcoder {
	if charset == "" {
		return nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return nil
	}

	return func(b []byte) (string, error) {
		out, err := enc.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}
