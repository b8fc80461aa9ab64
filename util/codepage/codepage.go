/*
 * EBCDIC code page registry.
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

package codepage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Logical character identity, only used to join the EBCDIC and ASCII
// sides of a table together.
type Role rune

// One row of a code page definition.
type Entry struct {
	Byte   byte // Physical byte value.
	EBCDIC Role // Character this byte represents as EBCDIC.
	ASCII  Role // Character this byte represents as ISO-8859-1.
}

// Supported code pages.
type ID int

const (
	CP037 ID = 37  // USA, Canada, English.
	CP273 ID = 273 // Germany, Austria.
	CP278 ID = 278 // Finland, Sweden.
)

var ErrUnknownCodepage = errors.New("unknown codepage")

// EBCDIC to Unicode tables for each code page.
var tables = map[ID]*[256]rune{
	CP037: &cp037,
	CP273: &cp273,
	CP278: &cp278,
}

// Return four digit name of code page.
func (id ID) String() string {
	s := strconv.Itoa(int(id))
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

// Return true if code page is one we have tables for.
func (id ID) Valid() bool {
	_, ok := tables[id]
	return ok
}

// List of supported code pages, lowest first.
func IDs() []ID {
	return []ID{CP037, CP273, CP278}
}

// Convert code page name to ID. Accepts 0037, 037, 37, CP037, IBM-037.
func Parse(name string) (ID, error) {
	str := strings.ToUpper(strings.TrimSpace(name))
	str = strings.TrimPrefix(str, "IBM-")
	str = strings.TrimPrefix(str, "IBM")
	str = strings.TrimPrefix(str, "CP")
	num, err := strconv.ParseUint(str, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCodepage, name)
	}
	id := ID(num)
	if !id.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCodepage, name)
	}
	return id, nil
}

// Return entries for a given code page. Each byte value appears once,
// in ascending order. Caller owns the returned slice.
func Lookup(id ID) ([]Entry, error) {
	table, ok := tables[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodepage, id)
	}

	entries := make([]Entry, 0, len(table))
	for i, r := range table {
		entries = append(entries, Entry{Byte: byte(i), EBCDIC: Role(r), ASCII: Role(i)})
	}
	return entries, nil
}
