/*
 * Load code page definitions from YAML files.
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
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var ErrBadDefinition = errors.New("invalid codepage definition")

// Code page loaded from an external file.
type Definition struct {
	Name    string
	Entries []Entry
}

// On disk format of one row.
type yamlEntry struct {
	Hex    string `yaml:"hex"`
	EBCDIC string `yaml:"ebcdic"`
	ASCII  string `yaml:"ascii"`
}

type yamlDefinition struct {
	Name    string      `yaml:"name"`
	Entries []yamlEntry `yaml:"entries"`
}

// Load a definition file.
func LoadFile(name string) (*Definition, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	def, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return def, nil
}

// Read a definition from reader.
func Load(r io.Reader) (*Definition, error) {
	var raw yamlDefinition

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDefinition, err)
	}

	if raw.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrBadDefinition)
	}

	def := Definition{Name: raw.Name, Entries: make([]Entry, 0, len(raw.Entries))}
	var seen [256]bool
	for i, row := range raw.Entries {
		if len(row.Hex) != 2 {
			return nil, fmt.Errorf("%w: entry %d: hex must be two digits: %q", ErrBadDefinition, i, row.Hex)
		}
		by, err := strconv.ParseUint(row.Hex, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: bad hex: %q", ErrBadDefinition, i, row.Hex)
		}
		if seen[by] {
			return nil, fmt.Errorf("%w: entry %d: duplicate byte %s", ErrBadDefinition, i, strings.ToUpper(row.Hex))
		}
		seen[by] = true

		ebcdic, err := parseRole(row.EBCDIC)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: ebcdic: %w", ErrBadDefinition, i, err)
		}
		ascii, err := parseRole(row.ASCII)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: ascii: %w", ErrBadDefinition, i, err)
		}
		def.Entries = append(def.Entries, Entry{Byte: byte(by), EBCDIC: ebcdic, ASCII: ascii})
	}
	return &def, nil
}

// Role is either a single character or U+XXXX.
func parseRole(str string) (Role, error) {
	if len(str) > 2 && (str[:2] == "U+" || str[:2] == "u+") {
		num, err := strconv.ParseUint(str[2:], 16, 32)
		if err != nil || !utf8.ValidRune(rune(num)) {
			return 0, errors.New("bad code point: " + str)
		}
		return Role(num), nil
	}

	r, size := utf8.DecodeRuneInString(str)
	if r == utf8.RuneError || size != len(str) {
		return 0, fmt.Errorf("role must be one character: %q", str)
	}
	return Role(r), nil
}
