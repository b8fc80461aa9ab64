/*
 * EBCDIC translation tables.
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
	"github.com/rcornwell/ebcdic/util/codepage"
)

// One direction of translation. Dense over the byte range, valid
// marks which slots have a mapping.
type table struct {
	code  [256]byte
	valid [256]bool
}

func (t *table) set(from, to byte) {
	t.code[from] = to
	t.valid[from] = true
}

func (t *table) get(from byte) (byte, bool) {
	return t.code[from], t.valid[from]
}

// Pair of translation tables for one code page. Never modified once built.
type Tables struct {
	name       string
	toEBCDIC   table
	toASCII    table
	unresolved []byte
}

// Build translation tables from code page entries.
//
// For each entry the ASCII role is looked up against the EBCDIC roles of
// the same code page. Entries with no match translate to and from 0x00.
// EBCDIC 0x00 always translates to ASCII 0x00.
func Build(name string, entries []codepage.Entry) *Tables {
	tables := &Tables{name: name}

	// First entry for a role wins.
	index := make(map[codepage.Role]byte, len(entries))
	for _, entry := range entries {
		if _, ok := index[entry.EBCDIC]; !ok {
			index[entry.EBCDIC] = entry.Byte
		}
	}

	for _, entry := range entries {
		code, ok := index[entry.ASCII]
		if !ok {
			code = 0x00
			tables.unresolved = append(tables.unresolved, entry.Byte)
		}
		tables.toEBCDIC.set(entry.Byte, code)
		tables.toASCII.set(code, entry.Byte)
	}

	tables.toASCII.set(0x00, 0x00)
	return tables
}

// Name of code page tables were built from.
func (t *Tables) Name() string {
	return t.name
}

// Bytes whose role had no counterpart.
func (t *Tables) Unresolved() []byte {
	return append([]byte(nil), t.unresolved...)
}

// Translate one EBCDIC byte to ASCII.
func (t *Tables) ToASCII(by byte) (byte, bool) {
	return t.toASCII.get(by)
}

// Translate one ASCII byte to EBCDIC.
func (t *Tables) ToEBCDIC(by byte) (byte, bool) {
	return t.toEBCDIC.get(by)
}

// Number of bytes mapped in each direction.
func (t *Tables) Len() (ascii int, ebcdic int) {
	for i := range 256 {
		if t.toASCII.valid[i] {
			ascii++
		}
		if t.toEBCDIC.valid[i] {
			ebcdic++
		}
	}
	return ascii, ebcdic
}
