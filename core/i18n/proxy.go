package i18n

import (
	"maps"
	"sync"
)

// Proxy binds a Translator to an implicit domain and interpolates placeholders
// into resolved text. The root proxy has no implicit domain, so the translator's
// default applies.
//
// Proxies are cheap, long-lived views. ForDomain memoizes children forever and is
// safe for concurrent use.
type Proxy struct {
	translator Translator
	domain     string

	// domain name -> *Proxy
	children sync.Map
}

// Compile-time check that a Proxy can itself stand in as a Translator.
var _ Translator = (*Proxy)(nil)

// NewProxy creates a root proxy over t.
func NewProxy(t Translator) *Proxy {
	if t == nil {
		panic(ErrNilTranslator)
	}
	return &Proxy{translator: t}
}

// ForDomain returns a proxy whose implicit domain is name. Repeated calls with the
// same name on the same proxy return the identical instance.
func (p *Proxy) ForDomain(name string) *Proxy {
	if child, ok := p.children.Load(name); ok {
		return child.(*Proxy)
	}
	child, _ := p.children.LoadOrStore(name, &Proxy{
		translator: p.translator,
		domain:     name,
	})
	return child.(*Proxy)
}

// Domain returns the implicit domain, or "" for a root proxy.
func (p *Proxy) Domain() string {
	return p.domain
}

// Translate resolves msg without interpolation. msg.Domain, when set, overrides
// the implicit domain for this call only.
func (p *Proxy) Translate(msg Message) string {
	if msg.Domain == "" {
		msg.Domain = p.domain
	}
	return p.translator.Translate(msg)
}

// Render resolves msg and interpolates placeholders and the count into the result.
// Later placeholder maps override earlier ones.
func (p *Proxy) Render(msg Message, placeholders ...M) string {
	return Interpolate(p.Translate(msg), merge(placeholders), msg.Count)
}

// T translates a message without context.
func (p *Proxy) T(msgid string, placeholders ...M) string {
	return p.Render(Message{Singular: msgid}, placeholders...)
}

// Tc translates a message with context.
func (p *Proxy) Tc(context, msgid string, placeholders ...M) string {
	return p.Render(Message{Singular: msgid, Context: String(context)}, placeholders...)
}

// Tn translates a message with plural forms for count n.
func (p *Proxy) Tn(singular, plural string, n int, placeholders ...M) string {
	return p.Render(Message{Singular: singular, Plural: plural, Count: Int(n)}, placeholders...)
}

// Tnc translates a message with context and plural forms for count n.
func (p *Proxy) Tnc(context, singular, plural string, n int, placeholders ...M) string {
	return p.Render(Message{
		Singular: singular,
		Plural:   plural,
		Count:    Int(n),
		Context:  String(context),
	}, placeholders...)
}

func merge(placeholders []M) M {
	switch len(placeholders) {
	case 0:
		return nil
	case 1:
		return placeholders[0]
	}
	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return merged
}
