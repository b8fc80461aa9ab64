/*
 * EBCDIC to ASCII (ISO-8859-1) translation.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package xlat

import (
	"log/slog"
	"sync/atomic"

	"golang.org/x/text/encoding/charmap"

	"github.com/rcornwell/ebcdic/util/codepage"
	"github.com/rcornwell/ebcdic/util/hex"
)

// Converts between one EBCDIC code page and ISO-8859-1.
//
// Create with New or NewFromEntries. A zero Codec has no tables. Every
// conversion on it fails with ErrNoTable until SetTable or SetEntries
// succeeds.
//
// Conversions may run concurrently with each other and with SetTable.
// Each conversion uses one set of tables from start to finish.
type Codec struct {
	tables atomic.Pointer[Tables]
	strict bool
	log    *slog.Logger
}

type Option func(*Codec)

// Fail table build when an entry has no EBCDIC counterpart, instead
// of translating it to 0x00.
func WithStrict(strict bool) Option {
	return func(c *Codec) {
		c.strict = strict
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Codec) {
		c.log = log
	}
}

// Create codec for a built in code page.
func New(id codepage.ID, opts ...Option) (*Codec, error) {
	c := newCodec(opts)
	if err := c.SetTable(id); err != nil {
		return nil, err
	}
	return c, nil
}

// Create codec from externally supplied entries.
func NewFromEntries(name string, entries []codepage.Entry, opts ...Option) (*Codec, error) {
	c := newCodec(opts)
	if err := c.SetEntries(name, entries); err != nil {
		return nil, err
	}
	return c, nil
}

func newCodec(opts []Option) *Codec {
	c := &Codec{log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Codec) logger() *slog.Logger {
	if c.log == nil {
		return slog.Default()
	}
	return c.log
}

// Current tables, error if none built yet.
func (c *Codec) active() (*Tables, error) {
	tables := c.tables.Load()
	if tables == nil {
		return nil, ErrNoTable
	}
	return tables, nil
}

// Switch to a built in code page. On error current tables are kept.
func (c *Codec) SetTable(id codepage.ID) error {
	entries, err := codepage.Lookup(id)
	if err != nil {
		return err
	}
	return c.SetEntries(id.String(), entries)
}

// Switch to tables built from entries. On error current tables are kept.
func (c *Codec) SetEntries(name string, entries []codepage.Entry) error {
	tables := Build(name, entries)
	if len(tables.unresolved) != 0 {
		if c.strict {
			return &UnresolvedJoinError{Codepage: name, Bytes: tables.Unresolved()}
		}
		c.logger().Warn("codepage has entries with no EBCDIC counterpart, mapped to 00",
			"codepage", name, "count", len(tables.unresolved))
	}

	old := c.tables.Swap(tables)
	if old != nil {
		c.logger().Debug("codepage changed", "from", old.name, "to", name)
	} else {
		c.logger().Debug("codepage loaded", "codepage", name)
	}
	return nil
}

// Name of current code page, empty if none.
func (c *Codec) Name() string {
	tables := c.tables.Load()
	if tables == nil {
		return ""
	}
	return tables.name
}

// Current translation tables, nil if none.
func (c *Codec) Tables() *Tables {
	return c.tables.Load()
}

// Convert EBCDIC hex string to an ISO-8859-1 string.
func (c *Codec) ToASCII(ebcdic string) (string, error) {
	iso, err := c.ToISO(ebcdic)
	if err != nil {
		return "", err
	}
	return string(decodeLatin1(iso)), nil
}

// Convert EBCDIC hex string to ISO-8859-1 bytes.
func (c *Codec) ToISO(ebcdic string) ([]byte, error) {
	tables, err := c.active()
	if err != nil {
		return nil, err
	}
	codes, err := parseHex(ebcdic)
	if err != nil {
		return nil, err
	}
	return translate(&tables.toASCII, codes)
}

// Convert ASCII hex string to EBCDIC hex string.
func (c *Codec) ToEBCDIC(ascii string) (string, error) {
	tables, err := c.active()
	if err != nil {
		return "", err
	}
	codes, err := parseHex(ascii)
	if err != nil {
		return "", err
	}
	out, err := translate(&tables.toEBCDIC, codes)
	if err != nil {
		return "", err
	}
	return hex.Encode(out), nil
}

// Convert text to EBCDIC hex string. Every character must exist in
// ISO-8859-1.
func (c *Codec) EncodeString(text string) (string, error) {
	codes := make([]byte, 0, len(text))
	for _, r := range text {
		by, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return "", &InvalidByteSequenceError{Token: string(r)}
		}
		codes = append(codes, by)
	}
	out, err := c.Encode(codes)
	if err != nil {
		return "", err
	}
	return hex.Encode(out), nil
}

// Convert EBCDIC bytes to ISO-8859-1 bytes.
func (c *Codec) Decode(ebcdic []byte) ([]byte, error) {
	tables, err := c.active()
	if err != nil {
		return nil, err
	}
	return translate(&tables.toASCII, ebcdic)
}

// Convert ISO-8859-1 bytes to EBCDIC bytes.
func (c *Codec) Encode(ascii []byte) ([]byte, error) {
	tables, err := c.active()
	if err != nil {
		return nil, err
	}
	return translate(&tables.toEBCDIC, ascii)
}

// Convert a single EBCDIC hex code to ASCII hex code.
func (c *Codec) CharToASCII(code string) (string, error) {
	tables, err := c.active()
	if err != nil {
		return "", err
	}
	return lookup(&tables.toASCII, code)
}

// Convert a single ASCII hex code to EBCDIC hex code.
func (c *Codec) CharToEBCDIC(code string) (string, error) {
	tables, err := c.active()
	if err != nil {
		return "", err
	}
	return lookup(&tables.toEBCDIC, code)
}

func lookup(t *table, code string) (string, error) {
	by, err := parseToken(code)
	if err != nil {
		return "", err
	}
	out, ok := t.get(by)
	if !ok {
		return "", &InvalidByteSequenceError{Token: hex.Encode([]byte{by})}
	}
	return hex.Encode([]byte{out}), nil
}

// Translate all bytes or none.
func translate(t *table, data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	for i, by := range data {
		code, ok := t.get(by)
		if !ok {
			return nil, &InvalidByteSequenceError{Token: hex.Encode([]byte{by})}
		}
		out[i] = code
	}
	return out, nil
}

// Decode ISO-8859-1 bytes to runes.
func decodeLatin1(data []byte) []rune {
	runes := make([]rune, len(data))
	for i, by := range data {
		runes[i] = charmap.ISO8859_1.DecodeByte(by)
	}
	return runes
}
