package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Interpolate substitutes placeholders and then the count into a resolved string.
//
// Every "{key}" is replaced with fmt.Sprint of its value in a single pass, so
// inserted text is never rescanned. Then "%d" becomes the count and "%f" the
// count with two decimals; with a nil count both become "". Tokens without a
// replacement are left as they are.
func Interpolate(resolved string, replacements M, count *int) string {
	s := ReplacePlaceholders(resolved, replacements)
	if !strings.Contains(s, "%") {
		return s
	}

	var integer, decimal string
	if count != nil {
		integer = strconv.Itoa(*count)
		decimal = strconv.FormatFloat(float64(*count), 'f', 2, 64)
	}
	return strings.NewReplacer("%d", integer, "%f", decimal).Replace(s)
}

// ReplacePlaceholders replaces "{name}" tokens with values from the map.
// Unknown tokens stay unchanged.
//
// Example:
//
//	template: "Hello, {name}! You have {count} messages."
//	placeholders: M{"name": "John", "count": 5}
//	returns: "Hello, John! You have 5 messages."
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for _, key := range slices.Sorted(maps.Keys(placeholders)) {
		pairs = append(pairs, "{"+key+"}", fmt.Sprint(placeholders[key]))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
