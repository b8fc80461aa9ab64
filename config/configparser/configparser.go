/*
 * Configuration file parser.
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

package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// List of options to pass to create routine.
type Option struct {
	Name     string   // Name of option.
	EqualOpt string   // Value of string after =.
	Value    []string // Value of option.
}

// Current option line being parsed.
type optionLine struct {
	line   string // Current option line.
	pos    int    // Current position in line.
	number int    // Line number in file.
}

/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := <name> | <name> <value> | <name> <value> <options>
 * <value> ::= <string> | '"' *(<letter> | <whitespace>) '"'
 * <options> ::= *(<option> *(<whitespace>))
 * <option> ::= <string> ['=' <value>] *(',' *(<whitespace>) <string>)
 * <string> ::= *(<letter> | <number> | <punct>)
 */

const (
	TypeOption  = 1 + iota // Accepts a option parameter.
	TypeOptions            // Accepts a parameter and a list of options.
	TypeSwitch             // Option only used to set a flag.
)

// Option creation list.
type optionDef struct {
	create func(string, []Option) error
	ty     int
}

var options = map[string]optionDef{}

func register(name string, ty int, fn func(string, []Option) error) {
	options[strings.ToUpper(name)] = optionDef{create: fn, ty: ty}
}

// Register should be called from init functions.
func RegisterOption(name string, fn func(string, []Option) error) {
	register(name, TypeOption, fn)
}

// Register should be called from init functions.
func RegisterOptions(name string, fn func(string, []Option) error) {
	register(name, TypeOptions, fn)
}

// Register should be called from init functions.
func RegisterSwitch(name string, fn func(string, []Option) error) {
	register(name, TypeSwitch, fn)
}

// Load in a configuration file.
func LoadConfigFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return LoadConfig(file)
}

// Process configuration from reader.
func LoadConfig(r io.Reader) error {
	reader := bufio.NewReader(r)
	number := 0
	for {
		text, err := reader.ReadString('\n')
		number++
		if len(text) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		line := optionLine{line: strings.TrimRight(text, "\r\n"), number: number}
		if err := line.parseLine(); err != nil {
			return err
		}
	}
	return nil
}

// Parse one line from file.
func (line *optionLine) parseLine() error {
	line.skipSpace()
	if line.isEOL() {
		return nil
	}

	name := strings.ToUpper(line.getName())
	if name == "" {
		return fmt.Errorf("invalid name, line: %d", line.number)
	}
	def, ok := options[name]
	if !ok {
		return fmt.Errorf("no option: %s registered, line: %d", name, line.number)
	}

	switch def.ty {
	case TypeSwitch:
		line.skipSpace()
		if !line.isEOL() {
			return fmt.Errorf("switch option: %s followed by options, line: %d", name, line.number)
		}
		return def.create("", nil)

	case TypeOption:
		value, err := line.getValue(name)
		if err != nil {
			return err
		}
		line.skipSpace()
		if !line.isEOL() {
			return fmt.Errorf("option: %s takes one value, line: %d", name, line.number)
		}
		return def.create(value, nil)

	case TypeOptions:
		value, err := line.getValue(name)
		if err != nil {
			return err
		}
		opts, err := line.parseOptions()
		if err != nil {
			return err
		}
		return def.create(value, opts)
	}
	return nil
}

// Get required value following name.
func (line *optionLine) getValue(name string) (string, error) {
	line.skipSpace()
	if line.isEOL() {
		return "", fmt.Errorf("option: %s not followed by value, line: %d", name, line.number)
	}
	value, ok := line.parseQuoteString()
	if !ok {
		return "", fmt.Errorf("invalid quoted string, line: %d [%d]", line.number, line.pos)
	}
	return value, nil
}

// Skip forward over line until none whitespace character found.
func (line *optionLine) skipSpace() {
	for line.pos < len(line.line) && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

// Check if at end of line.
func (line *optionLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}
	return line.line[line.pos] == '#'
}

// Check if character can be part of an unquoted word.
func isWord(by byte) bool {
	if by == '=' || by == ',' || by == '"' || by == '#' {
		return false
	}
	return !unicode.IsSpace(rune(by))
}

// Collect word at current position.
func (line *optionLine) getName() string {
	start := line.pos
	for line.pos < len(line.line) && isWord(line.line[line.pos]) {
		line.pos++
	}
	return line.line[start:line.pos]
}

// Parse string that is "string" or just string. A quote inside a
// quoted string is written as "".
func (line *optionLine) parseQuoteString() (string, bool) {
	if line.pos >= len(line.line) || line.line[line.pos] != '"' {
		value := line.getName()
		return value, value != ""
	}

	var value strings.Builder
	line.pos++
	for line.pos < len(line.line) {
		by := line.line[line.pos]
		line.pos++
		if by == '"' {
			if line.pos < len(line.line) && line.line[line.pos] == '"' {
				value.WriteByte('"')
				line.pos++
				continue
			}
			return value.String(), true
		}
		value.WriteByte(by)
	}
	return "", false
}

// Parse one option, nil at end of line.
func (line *optionLine) parseOption() (*Option, error) {
	line.skipSpace()
	if line.isEOL() {
		return nil, nil
	}

	name := line.getName()
	if name == "" {
		return nil, fmt.Errorf("invalid option encountered line: %d [%d]", line.number, line.pos)
	}
	option := Option{Name: name}

	if line.pos < len(line.line) && line.line[line.pos] == '=' {
		line.pos++
		v, ok := line.parseQuoteString()
		if !ok {
			return nil, fmt.Errorf("invalid quoted string line: %d [%d]", line.number, line.pos)
		}
		option.EqualOpt = v
	}

	// Grab all , options
	line.skipSpace()
	for !line.isEOL() && line.line[line.pos] == ',' {
		line.pos++
		line.skipSpace()
		v := line.getName()
		if v == "" {
			return nil, fmt.Errorf("empty option value line: %d [%d]", line.number, line.pos)
		}
		option.Value = append(option.Value, v)
		line.skipSpace()
	}
	return &option, nil
}

// Collect all options for line.
func (line *optionLine) parseOptions() ([]Option, error) {
	opts := []Option{}
	for {
		option, err := line.parseOption()
		if err != nil {
			return nil, err
		}
		if option == nil {
			break
		}
		opts = append(opts, *option)
	}
	return opts, nil
}
