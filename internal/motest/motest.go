// Package motest builds binary MO catalogs in memory for tests.
//
// It writes the same layout msgfmt produces (sorted original strings, NUL terminated
// string data, no hash table) in either byte order, so decoder and engine tests can
// describe fixtures as Go values instead of checking in binary files.
package motest

import (
	"encoding/binary"
	"sort"
	"strings"
)

// Magic is the MO magic number.
const Magic uint32 = 0x950412de

const headerSize = 28

type message struct {
	original    string
	translation string
}

// Builder accumulates messages and renders them as an MO file.
type Builder struct {
	order    binary.ByteOrder
	revision uint32
	header   string
	messages []message
}

// New returns a little-endian builder with no metadata entry.
func New() *Builder {
	return &Builder{order: binary.LittleEndian}
}

// BigEndian switches the output byte order.
func (b *Builder) BigEndian() *Builder {
	b.order = binary.BigEndian
	return b
}

// Revision sets the format revision word.
func (b *Builder) Revision(rev uint32) *Builder {
	b.revision = rev
	return b
}

// Header sets the raw metadata entry stored under the empty msgid.
func (b *Builder) Header(raw string) *Builder {
	b.header = raw
	return b
}

// Headers builds a metadata entry with the given Plural-Forms value and charset.
// Empty arguments omit the corresponding line.
func (b *Builder) Headers(pluralForms, charset string) *Builder {
	var sb strings.Builder
	sb.WriteString("Project-Id-Version: t7e\n")
	sb.WriteString("MIME-Version: 1.0\n")
	if charset != "" {
		sb.WriteString("Content-Type: text/plain; charset=" + charset + "\n")
	}
	if pluralForms != "" {
		sb.WriteString("Plural-Forms: " + pluralForms + "\n")
	}
	return b.Header(sb.String())
}

// Add adds a message without context or plural.
func (b *Builder) Add(id string, translation string) *Builder {
	return b.add(id, translation)
}

// AddContext adds a message with a context.
func (b *Builder) AddContext(ctx, id, translation string) *Builder {
	return b.add(ctx+"\x04"+id, translation)
}

// AddPlural adds a message with a plural source and one translation per plural form.
func (b *Builder) AddPlural(id, pluralID string, forms ...string) *Builder {
	return b.add(id+"\x00"+pluralID, strings.Join(forms, "\x00"))
}

// AddPluralContext adds a plural message with a context.
func (b *Builder) AddPluralContext(ctx, id, pluralID string, forms ...string) *Builder {
	return b.add(ctx+"\x04"+id+"\x00"+pluralID, strings.Join(forms, "\x00"))
}

func (b *Builder) add(original, translation string) *Builder {
	b.messages = append(b.messages, message{original: original, translation: translation})
	return b
}

// Bytes renders the catalog.
func (b *Builder) Bytes() []byte {
	msgs := make([]message, 0, len(b.messages)+1)
	if b.header != "" {
		msgs = append(msgs, message{translation: b.header})
	}
	msgs = append(msgs, b.messages...)
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].original < msgs[j].original })

	n := uint32(len(msgs))
	origTable := uint32(headerSize)
	transTable := origTable + 8*n
	dataStart := transTable + 8*n

	var data []byte
	origDesc := make([][2]uint32, n)
	transDesc := make([][2]uint32, n)
	for i, m := range msgs {
		origDesc[i] = [2]uint32{uint32(len(m.original)), dataStart + uint32(len(data))}
		data = append(data, m.original...)
		data = append(data, 0)
	}
	for i, m := range msgs {
		transDesc[i] = [2]uint32{uint32(len(m.translation)), dataStart + uint32(len(data))}
		data = append(data, m.translation...)
		data = append(data, 0)
	}

	out := make([]byte, dataStart, int(dataStart)+len(data))
	put := func(off, v uint32) { b.order.PutUint32(out[off:], v) }
	put(0, Magic)
	put(4, b.revision)
	put(8, n)
	put(12, origTable)
	put(16, transTable)
	put(20, 0)
	put(24, dataStart)
	for i := range msgs {
		put(origTable+uint32(i)*8, origDesc[i][0])
		put(origTable+uint32(i)*8+4, origDesc[i][1])
		put(transTable+uint32(i)*8, transDesc[i][0])
		put(transTable+uint32(i)*8+4, transDesc[i][1])
	}

	return append(out, data...)
}
