package catalog

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/dmitrymomot/t7e/core/plural"
)

const (
	magic = 0x950412de

	// headerSize covers magic, revision, count, both table offsets and the hash table fields.
	headerSize = 28

	// maxMajorRevision is the highest major format revision understood.
	maxMajorRevision = 1
)

type rawMessage struct {
	original    []byte
	translation []byte
}

// Decode parses an MO file. The domain name is recorded on the catalog and used in errors.
func Decode(data []byte, domain string) (*Catalog, error) {
	if len(data) < headerSize {
		return nil, malformed(domain, "file is %d bytes, header needs %d", len(data), headerSize)
	}

	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(data) == magic:
		order = binary.LittleEndian
	case binary.BigEndian.Uint32(data) == magic:
		order = binary.BigEndian
	default:
		return nil, malformed(domain, "bad magic number %#08x", binary.LittleEndian.Uint32(data))
	}

	revision := order.Uint32(data[4:])
	if revision>>16 > maxMajorRevision {
		return nil, malformed(domain, "unsupported revision %d.%d", revision>>16, revision&0xffff)
	}

	count := uint64(order.Uint32(data[8:]))
	origTable := uint64(order.Uint32(data[12:]))
	transTable := uint64(order.Uint32(data[16:]))
	size := uint64(len(data))

	if origTable+count*8 > size {
		return nil, malformed(domain, "original string table of %d entries at %d exceeds %d bytes", count, origTable, size)
	}
	if transTable+count*8 > size {
		return nil, malformed(domain, "translation string table of %d entries at %d exceeds %d bytes", count, transTable, size)
	}

	raw := make([]rawMessage, count)
	metaIdx := -1
	for i := range count {
		orig, err := readString(data, order, origTable+i*8)
		if err != nil {
			return nil, malformed(domain, "original string %d: %v", i, err)
		}
		trans, err := readString(data, order, transTable+i*8)
		if err != nil {
			return nil, malformed(domain, "translation string %d: %v", i, err)
		}
		raw[i] = rawMessage{original: orig, translation: trans}
		if len(orig) == 0 && metaIdx < 0 {
			metaIdx = int(i)
		}
	}

	c := &Catalog{
		domain:   domain,
		messages: make(map[MessageKey]Entry, len(raw)),
		headers:  map[string]string{},
		forms:    plural.DefaultForms(),
	}

	conv := transcoder(nil)
	if metaIdx >= 0 {
		meta := string(raw[metaIdx].translation)
		c.charset = charsetOf(parseHeaders(meta)["content-type"])

		conv = newTranscoder(c.charset)
		if conv != nil {
			var err error
			if meta, err = conv(raw[metaIdx].translation); err != nil {
				return nil, malformed(domain, "header: %v", err)
			}
		}
		c.headers = parseHeaders(meta)

		if pf, ok := c.headers["plural-forms"]; ok {
			forms, err := plural.ParseForms(pf)
			if err != nil {
				c.pluralErr = fmt.Errorf("domain %q: %w", domain, err)
			} else {
				c.forms = forms
			}
		}
	}

	for i, m := range raw {
		if i == metaIdx {
			continue
		}

		orig, trans := string(m.original), string(m.translation)
		if conv != nil {
			var err error
			if orig, err = conv(m.original); err != nil {
				return nil, malformed(domain, "original string %d: %v", i, err)
			}
			if trans, err = conv(m.translation); err != nil {
				return nil, malformed(domain, "translation string %d: %v", i, err)
			}
		}

		key, pluralID := splitOriginal(orig)
		c.messages[key] = Entry{
			pluralID: pluralID,
			forms:    strings.Split(trans, "\x00"),
		}
	}

	return c, nil
}

// readString resolves the (length, offset) descriptor stored at pos.
func readString(data []byte, order binary.ByteOrder, pos uint64) ([]byte, error) {
	length := uint64(order.Uint32(data[pos:]))
	offset := uint64(order.Uint32(data[pos+4:]))
	if offset+length > uint64(len(data)) {
		return nil, fmt.Errorf("%d bytes at offset %d exceed %d bytes", length, offset, len(data))
	}
	return data[offset : offset+length], nil
}

// splitOriginal separates "context\x04msgid\x00plural" into its parts.
func splitOriginal(s string) (MessageKey, string) {
	var key MessageKey
	if ctx, rest, ok := strings.Cut(s, contextSeparator); ok {
		key.Context = ctx
		key.HasContext = true
		s = rest
	}
	id, pluralID, _ := strings.Cut(s, "\x00")
	key.ID = id
	return key, pluralID
}
