/*
 * Console command parser.
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

package parser

import (
	"errors"
	"slices"
	"strings"
	"unicode"

	"github.com/s0rg/trie"

	command "github.com/rcornwell/ebcdic/command/command"
)

type cmd struct {
	Name     string // Command name.
	Min      int    // Minimum match size.
	Process  func(*cmdLine, *command.Session) (bool, error)
	Complete func(*cmdLine) []string
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

// Prefix index of command names.
var cmdIndex = buildIndex()

func buildIndex() *trie.Trie[int] {
	index := trie.New[int]()
	for i, m := range cmdList {
		index.Add(m.Name, i)
	}
	return index
}

// Execute the command line given. Returns true when console should exit.
func ProcessCommand(commandLine string, session *command.Session) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()
	if name == "" {
		if line.isEOL() {
			return false, nil
		}
		return false, errors.New("command not found: " + strings.TrimSpace(commandLine))
	}

	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}

	if len(match) > 1 {
		return false, errors.New("unique command not found: " + name)
	}

	return match[0].Process(&line, session)
}

// Return commands starting with prefix, in name order.
func prefixList(prefix string) []cmd {
	names, ok := cmdIndex.Suggest(prefix)
	if !ok {
		return nil
	}
	slices.Sort(names)
	match := make([]cmd, 0, len(names))
	for _, name := range names {
		i, _ := cmdIndex.Find(name)
		match = append(match, cmdList[i])
	}
	return match
}

// Check if command matches one of the commands, to at least minimum length.
func matchList(command string) []cmd {
	// If command empty just return.
	if command == "" {
		return []cmd{}
	}

	// An exact name always wins.
	if i, ok := cmdIndex.Find(command); ok {
		return []cmd{cmdList[i]}
	}

	var match []cmd
	for _, m := range prefixList(command) {
		if len(command) >= m.Min {
			match = append(match, m)
		}
	}
	return match
}

// Skip forward over line until none whitespace character found.
func (line *cmdLine) skipSpace() {
	for line.pos < len(line.line) && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

// Check if at end of line.
func (line *cmdLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}
	return line.line[line.pos] == '#'
}

// Parse command or option name, returned lower case.
func (line *cmdLine) getWord() string {
	line.skipSpace()

	// Characters must be alphabetic
	pos := line.pos
	for line.pos < len(line.line) && unicode.IsLetter(rune(line.line[line.pos])) {
		line.pos++
	}
	if line.pos < len(line.line) && !unicode.IsSpace(rune(line.line[line.pos])) && !line.isEOL() {
		line.pos = pos
		return ""
	}
	return strings.ToLower(line.line[pos:line.pos])
}

// Collect next space separated token without checking content.
func (line *cmdLine) getToken() string {
	line.skipSpace()
	pos := line.pos
	for line.pos < len(line.line) && !unicode.IsSpace(rune(line.line[line.pos])) && !line.isEOL() {
		line.pos++
	}
	return line.line[pos:line.pos]
}

// Collect hex argument. Spaces between bytes are allowed.
func (line *cmdLine) getHex() string {
	var value strings.Builder
	for {
		token := line.getToken()
		if token == "" {
			break
		}
		value.WriteString(token)
	}
	return value.String()
}

// Parse string that is "string" or just string. A quote inside a
// quoted string is written as "".
func (line *cmdLine) parseQuoteString() (string, bool) {
	line.skipSpace()
	if line.pos >= len(line.line) {
		return "", false
	}
	if line.line[line.pos] != '"' {
		value := line.getToken()
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
	return value.String(), false
}

// Check nothing but comment remains.
func (line *cmdLine) atEnd() error {
	line.skipSpace()
	if !line.isEOL() {
		return errors.New("unexpected text: " + line.line[line.pos:])
	}
	return nil
}
