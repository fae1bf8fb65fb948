package i18n_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/t7e/core/catalog"
	"github.com/dmitrymomot/t7e/core/i18n"
	"github.com/dmitrymomot/t7e/core/logger"
	"github.com/dmitrymomot/t7e/internal/motest"
)

func newEngine(t *testing.T, opts ...i18n.Option) *i18n.Engine {
	t.Helper()
	opts = append([]i18n.Option{
		i18n.WithDomain("greetings", motest.Greetings()),
		i18n.WithDomain("files", motest.Polish()),
	}, opts...)
	e, err := i18n.New(motest.Messages(), opts...)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults to the messages domain", func(t *testing.T) {
		e, err := i18n.New(motest.Messages())
		require.NoError(t, err)
		assert.Equal(t, i18n.DefaultDomainName, e.DefaultDomain())
		assert.Equal(t, []string{"messages"}, e.Domains())
	})

	t.Run("custom primary domain name", func(t *testing.T) {
		e, err := i18n.New(motest.Messages(), i18n.WithDomainName("app"))
		require.NoError(t, err)
		assert.Equal(t, "app", e.DefaultDomain())
		assert.Equal(t, "Hallo", e.Translate(i18n.Message{Singular: "Hello"}))
		assert.Equal(t, "Hallo", e.Translate(i18n.Message{Singular: "Hello", Domain: "app"}))
		assert.Equal(t, "Hello", e.Translate(i18n.Message{Singular: "Hello", Domain: "messages"}))
	})

	t.Run("domains list default first then sorted", func(t *testing.T) {
		e := newEngine(t, i18n.WithDomain("admin", motest.Greetings()))
		assert.Equal(t, []string{"messages", "admin", "files", "greetings"}, e.Domains())

		// returned slice is a copy
		e.Domains()[0] = "changed"
		assert.Equal(t, "messages", e.Domains()[0])
	})

	t.Run("exposes decoded catalogs", func(t *testing.T) {
		e := newEngine(t)
		c, ok := e.Catalog("files")
		require.True(t, ok)
		assert.Equal(t, 3, c.NPlurals())

		_, ok = e.Catalog("unknown")
		assert.False(t, ok)
	})

	t.Run("empty domain names are rejected", func(t *testing.T) {
		_, err := i18n.New(motest.Messages(), i18n.WithDomainName(""))
		require.ErrorIs(t, err, i18n.ErrEmptyDomainName)

		_, err = i18n.New(motest.Messages(), i18n.WithDomain("", motest.Greetings()))
		require.ErrorIs(t, err, i18n.ErrEmptyDomainName)
	})

	t.Run("malformed primary catalog", func(t *testing.T) {
		data := motest.Messages()
		data[0] ^= 0xff

		e, err := i18n.New(data)
		require.ErrorIs(t, err, catalog.ErrMalformedCatalog)
		assert.Nil(t, e)

		var merr *catalog.MalformedError
		require.True(t, errors.As(err, &merr))
		assert.Equal(t, "messages", merr.Domain)
	})

	t.Run("malformed additional catalog", func(t *testing.T) {
		e, err := i18n.New(motest.Messages(), i18n.WithDomain("broken", []byte("not a catalog")))
		require.ErrorIs(t, err, catalog.ErrMalformedCatalog)
		assert.Nil(t, e)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("primary wins over same-named additional domain", func(t *testing.T) {
		e, err := i18n.New(motest.Messages(), i18n.WithDomain("messages", motest.Greetings()))
		require.NoError(t, err)
		assert.Equal(t, "Hallo", e.Translate(i18n.Message{Singular: "Hello"}))
		assert.Equal(t, []string{"messages"}, e.Domains())
	})

	t.Run("later additional domain replaces earlier", func(t *testing.T) {
		e, err := i18n.New(motest.Messages(),
			i18n.WithDomain("extra", motest.Polish()),
			i18n.WithDomain("extra", motest.Greetings()),
		)
		require.NoError(t, err)
		assert.Equal(t, "Yolo", e.Translate(i18n.Message{Singular: "Hello", Domain: "extra"}))
	})
}

func TestEngineTranslate(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	t.Run("resolves by domain", func(t *testing.T) {
		assert.Equal(t, "Hallo", e.Translate(i18n.Message{Singular: "Hello", Domain: "messages"}))
		assert.Equal(t, "Yolo", e.Translate(i18n.Message{Singular: "Hello", Domain: "greetings"}))
		assert.Equal(t, "Hello", e.Translate(i18n.Message{Singular: "Hello", Domain: "unbound"}))
		assert.Equal(t, "Hallo", e.Translate(i18n.Message{Singular: "Hello"}))
	})

	t.Run("standard rule selects variants", func(t *testing.T) {
		msg := func(n int) i18n.Message {
			return i18n.Message{Singular: "Hello one person", Plural: "Hello %d people", Count: i18n.Int(n)}
		}
		assert.Equal(t, "Hallo een persoon", e.Translate(msg(1)))
		assert.Equal(t, "Hallo %d personen", e.Translate(msg(0)))
		for _, n := range []int{2, 5, 11, 100, 1001} {
			assert.Equal(t, "Hallo %d personen", e.Translate(msg(n)), "n=%d", n)
		}
	})

	t.Run("variant 0 without count or plural", func(t *testing.T) {
		assert.Equal(t, "Hallo een persoon", e.Translate(i18n.Message{
			Singular: "Hello one person",
			Plural:   "Hello %d people",
		}))
		assert.Equal(t, "Hallo een persoon", e.Translate(i18n.Message{
			Singular: "Hello one person",
			Count:    i18n.Int(7),
		}))
	})

	t.Run("absent messages use the two-bucket fallback", func(t *testing.T) {
		for _, domain := range []string{"", "files", "nope"} {
			msg := func(n int) i18n.Message {
				return i18n.Message{Singular: "one apple", Plural: "%d apples", Count: i18n.Int(n), Domain: domain}
			}
			assert.Equal(t, "one apple", e.Translate(msg(1)), "domain %q", domain)
			assert.Equal(t, "%d apples", e.Translate(msg(0)), "domain %q", domain)
			assert.Equal(t, "%d apples", e.Translate(msg(3)), "domain %q", domain)
			assert.Equal(t, "%d apples", e.Translate(msg(22)), "domain %q", domain)
		}
		assert.Equal(t, "one apple", e.Translate(i18n.Message{Singular: "one apple", Plural: "%d apples"}))
	})

	t.Run("context disambiguates", func(t *testing.T) {
		assert.Equal(t, "Openen", e.Translate(i18n.Message{Singular: "Open", Context: i18n.String("menu")}))
		assert.Equal(t, "Geopend", e.Translate(i18n.Message{Singular: "Open", Context: i18n.String("state")}))
		assert.Equal(t, "Leeg", e.Translate(i18n.Message{Singular: "Open", Context: i18n.String("")}))
		// no context never matches an empty context
		assert.Equal(t, "Open", e.Translate(i18n.Message{Singular: "Open"}))
		assert.Equal(t, "Open", e.Translate(i18n.Message{Singular: "Open", Context: i18n.String("footer")}))
		// context-free entries are not found through a context
		assert.Equal(t, "Hello", e.Translate(i18n.Message{Singular: "Hello", Context: i18n.String("")}))
	})

	t.Run("context with plural", func(t *testing.T) {
		msg := i18n.Message{Singular: "%d item", Plural: "%d items", Context: i18n.String("cart")}
		msg.Count = i18n.Int(1)
		assert.Equal(t, "%d artikel", e.Translate(msg))
		msg.Count = i18n.Int(4)
		assert.Equal(t, "%d artikelen", e.Translate(msg))
		msg.Context = nil
		assert.Equal(t, "%d items", e.Translate(msg))
	})

	t.Run("each domain keeps its own plural rule", func(t *testing.T) {
		tests := map[int]string{
			1:   "%d plik",
			2:   "%d pliki",
			4:   "%d pliki",
			5:   "%d plików",
			12:  "%d plików",
			22:  "%d pliki",
			25:  "%d plików",
			0:   "%d plików",
			102: "%d pliki",
		}
		for n, want := range tests {
			got := e.Translate(i18n.Message{Singular: "%d file", Plural: "%d files", Count: i18n.Int(n), Domain: "files"})
			assert.Equal(t, want, got, "n=%d", n)
		}
		// other domains still use n != 1
		assert.Equal(t, "Yolo %d", e.Translate(i18n.Message{
			Singular: "Hello one", Plural: "Hello %d", Count: i18n.Int(2), Domain: "greetings",
		}))
	})
}

func TestEngineTranslate_EmptyVariant(t *testing.T) {
	t.Parallel()

	data := motest.New().
		Headers(motest.DutchPluralForms, "UTF-8").
		Add("Draft", "").
		AddPlural("%d apple", "%d apples", "%d appel", "").
		Bytes()
	e, err := i18n.New(data)
	require.NoError(t, err)

	assert.Equal(t, "Draft", e.Translate(i18n.Message{Singular: "Draft"}))

	msg := i18n.Message{Singular: "%d apple", Plural: "%d apples"}
	msg.Count = i18n.Int(1)
	assert.Equal(t, "%d appel", e.Translate(msg))
	msg.Count = i18n.Int(3)
	assert.Equal(t, "%d apples", e.Translate(msg))
}

func TestEngineTranslate_ClampsPluralIndex(t *testing.T) {
	t.Parallel()

	// Three forms declared, but the entry only has two.
	data := motest.New().
		Headers("nplurals=3; plural=n==1 ? 0 : n==2 ? 1 : 2;", "UTF-8").
		AddPlural("%d cat", "%d cats", "one cat", "two cats").
		Bytes()
	e, err := i18n.New(data)
	require.NoError(t, err)

	msg := i18n.Message{Singular: "%d cat", Plural: "%d cats", Count: i18n.Int(9)}
	assert.Equal(t, "two cats", e.Translate(msg))
}

func TestEngine_BadPluralForms(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

	data := motest.New().
		Headers("nplurals=3; plural=n ?? 1;", "UTF-8").
		AddPlural("%d dog", "%d dogs", "hond", "honden", "hondjes").
		Bytes()
	e, err := i18n.New(data, i18n.WithLogger(log))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "plural forms ignored")
	assert.Contains(t, buf.String(), "domain=messages")

	msg := i18n.Message{Singular: "%d dog", Plural: "%d dogs"}
	msg.Count = i18n.Int(1)
	assert.Equal(t, "hond", e.Translate(msg))
	msg.Count = i18n.Int(5)
	assert.Equal(t, "honden", e.Translate(msg))
}

func TestEngine_MissingKeys(t *testing.T) {
	t.Parallel()

	t.Run("handler is called for every fallback", func(t *testing.T) {
		type miss struct {
			domain string
			key    catalog.MessageKey
		}
		var got []miss
		e := newEngine(t, i18n.WithMissingKeyHandler(func(domain string, key catalog.MessageKey) {
			got = append(got, miss{domain, key})
		}))

		e.Translate(i18n.Message{Singular: "Hello"})
		e.Translate(i18n.Message{Singular: "Bye"})
		e.Translate(i18n.Message{Singular: "Bye"})
		e.Translate(i18n.Message{Singular: "Open", Context: i18n.String("tab"), Domain: "greetings"})

		assert.Equal(t, []miss{
			{"messages", catalog.Key("Bye")},
			{"messages", catalog.Key("Bye")},
			{"greetings", catalog.ContextKey("tab", "Open")},
		}, got)
	})

	t.Run("logged once per domain and key", func(t *testing.T) {
		var buf bytes.Buffer
		e := newEngine(t, i18n.WithLogger(logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelDebug),
			logger.WithJSONFormatter(),
		)))
		buf.Reset()

		for range 3 {
			e.Translate(i18n.Message{Singular: "Bye"})
		}
		e.Translate(i18n.Message{Singular: "Bye", Domain: "greetings"})
		e.Translate(i18n.Message{Singular: "Bye", Context: i18n.String("")})

		assert.Equal(t, 3, strings.Count(buf.String(), `"msg":"translation missing"`))
		assert.Contains(t, buf.String(), `"component":"i18n"`)
	})
}

func TestSourceTranslator(t *testing.T) {
	t.Parallel()

	var st i18n.SourceTranslator
	assert.Equal(t, "Hello", st.Translate(i18n.Message{Singular: "Hello"}))
	assert.Equal(t, "a file", st.Translate(i18n.Message{Singular: "a file", Plural: "files", Count: i18n.Int(1)}))
	assert.Equal(t, "files", st.Translate(i18n.Message{Singular: "a file", Plural: "files", Count: i18n.Int(0)}))
	assert.Equal(t, "a file", st.Translate(i18n.Message{Singular: "a file", Plural: "files"}))
}

func TestMessageKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, catalog.Key("Open"), i18n.Message{Singular: "Open"}.Key())
	assert.Equal(t, catalog.ContextKey("", "Open"), i18n.Message{Singular: "Open", Context: i18n.String("")}.Key())
	assert.NotEqual(t, i18n.Message{Singular: "Open"}.Key(), i18n.Message{Singular: "Open", Context: i18n.String("")}.Key())
}
