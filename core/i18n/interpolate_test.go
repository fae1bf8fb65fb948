package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/t7e/core/i18n"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		resolved     string
		replacements i18n.M
		count        *int
		want         string
	}{
		{
			name:         "named placeholder",
			resolved:     "Hello {user}",
			replacements: i18n.M{"user": "Ann"},
			want:         "Hello Ann",
		},
		{
			name:     "integer count",
			resolved: "%d items",
			count:    i18n.Int(3),
			want:     "3 items",
		},
		{
			name:     "decimal count",
			resolved: "%f items",
			count:    i18n.Int(3),
			want:     "3.00 items",
		},
		{
			name:     "negative count",
			resolved: "%d / %f",
			count:    i18n.Int(-2),
			want:     "-2 / -2.00",
		},
		{
			name:     "count tokens without count",
			resolved: "%d items, %f total",
			want:     " items,  total",
		},
		{
			name:         "every occurrence",
			resolved:     "{a}-{a}-{b}",
			replacements: i18n.M{"a": 1, "b": true},
			want:         "1-1-true",
		},
		{
			name:         "unmatched token stays",
			resolved:     "Hello {user}, {unknown}",
			replacements: i18n.M{"user": "Ann", "unused": "x"},
			want:         "Hello Ann, {unknown}",
		},
		{
			name:         "inserted text is not rescanned",
			resolved:     "{a} {b}",
			replacements: i18n.M{"a": "{b}", "b": "{a}"},
			want:         "{b} {a}",
		},
		{
			name:         "placeholders before count",
			resolved:     "{n} of %d",
			replacements: i18n.M{"n": 2},
			count:        i18n.Int(10),
			want:         "2 of 10",
		},
		{
			name:     "other percent sequences untouched",
			resolved: "100% of %s and %d",
			count:    i18n.Int(1),
			want:     "100% of %s and 1",
		},
		{
			name:         "nil values",
			resolved:     "{v}",
			replacements: i18n.M{"v": nil},
			want:         "<nil>",
		},
		{
			name:     "plain text",
			resolved: "nothing to do",
			want:     "nothing to do",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.Interpolate(tt.resolved, tt.replacements, tt.count))
		})
	}
}

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	t.Run("replaces known keys", func(t *testing.T) {
		got := i18n.ReplacePlaceholders("Welcome back, {name}! You have {count} new messages.", i18n.M{
			"name":  "Alice",
			"count": 3,
		})
		assert.Equal(t, "Welcome back, Alice! You have 3 new messages.", got)
	})

	t.Run("empty map returns template", func(t *testing.T) {
		assert.Equal(t, "Hi {name}", i18n.ReplacePlaceholders("Hi {name}", nil))
		assert.Equal(t, "Hi {name}", i18n.ReplacePlaceholders("Hi {name}", i18n.M{}))
	})

	t.Run("percent tokens are left alone", func(t *testing.T) {
		assert.Equal(t, "%d {x}", i18n.ReplacePlaceholders("%d {x}", i18n.M{"y": 1}))
	})
}
