/*
 * Console commands.
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
	"log/slog"
	"strings"

	command "github.com/rcornwell/ebcdic/command/command"
	"github.com/rcornwell/ebcdic/util/codepage"
	"github.com/rcornwell/ebcdic/util/hex"
	"github.com/rcornwell/ebcdic/util/xlat"
)

var cmdList = []cmd{
	{Name: "ascii", Min: 1, Process: toASCII},
	{Name: "iso", Min: 1, Process: toISO},
	{Name: "ebcdic", Min: 1, Process: toEBCDIC},
	{Name: "text", Min: 2, Process: text},
	{Name: "split", Min: 2, Process: split},
	{Name: "set", Min: 3, Process: set, Complete: setComplete},
	{Name: "show", Min: 2, Process: show, Complete: showComplete},
	{Name: "load", Min: 1, Process: load},
	{Name: "quit", Min: 4, Process: quit},
}

// Convert EBCDIC hex to text.
func toASCII(line *cmdLine, session *command.Session) (bool, error) {
	slog.Debug("Command ASCII")
	str, err := session.Codec.ToASCII(line.getHex())
	if err != nil {
		return false, err
	}
	session.Printf("%s", str)
	return false, nil
}

// Convert EBCDIC hex to ISO-8859-1 and dump it.
func toISO(line *cmdLine, session *command.Session) (bool, error) {
	slog.Debug("Command ISO")
	data, err := session.Codec.ToISO(line.getHex())
	if err != nil {
		return false, err
	}

	var str strings.Builder
	for offset := 0; offset < len(data); offset += 16 {
		hex.FormatDump(&str, offset, data[offset:min(offset+16, len(data))])
	}
	session.Printf("%s", strings.TrimSuffix(str.String(), "\n"))
	return false, nil
}

// Convert ASCII hex to EBCDIC hex.
func toEBCDIC(line *cmdLine, session *command.Session) (bool, error) {
	slog.Debug("Command EBCDIC")
	str, err := session.Codec.ToEBCDIC(line.getHex())
	if err != nil {
		return false, err
	}
	session.Printf("%s", str)
	return false, nil
}

// Convert text to EBCDIC hex.
func text(line *cmdLine, session *command.Session) (bool, error) {
	slog.Debug("Command Text")
	value, ok := line.parseQuoteString()
	if !ok {
		return false, errors.New("text requires a string")
	}
	if err := line.atEnd(); err != nil {
		return false, err
	}
	str, err := session.Codec.EncodeString(value)
	if err != nil {
		return false, err
	}
	session.Printf("%s", str)
	return false, nil
}

// Show how hex string gets split into bytes.
func split(line *cmdLine, session *command.Session) (bool, error) {
	slog.Debug("Command Split")
	session.Printf("%s", strings.Join(xlat.SplitHex(line.getHex()), " "))
	return false, nil
}

// Handle set commands.
func set(line *cmdLine, session *command.Session) (bool, error) {
	slog.Debug("Command Set")
	name := line.getWord()
	switch name {
	case "codepage":
		id, err := codepage.Parse(line.getToken())
		if err != nil {
			return false, err
		}
		if err := line.atEnd(); err != nil {
			return false, err
		}
		return false, session.Codec.SetTable(id)
	case "":
		return false, errors.New("set requires an option")
	default:
		return false, errors.New("unknown set option: " + name)
	}
}

// Set command completion.
func setComplete(line *cmdLine) []string {
	opt := line.getWord()
	if opt != "codepage" || line.pos >= len(line.line) {
		return line.complete(line.line[:line.pos-len(opt)], opt, command.SetOptions)
	}

	// Complete code page name.
	leading := line.line[:line.pos]
	line.skipSpace()
	leading += line.line[len(leading):line.pos]
	names := []string{}
	for _, id := range codepage.IDs() {
		names = append(names, id.String())
	}
	return line.complete(leading, line.getToken(), names)
}

// Process the show command.
func show(line *cmdLine, session *command.Session) (bool, error) {
	slog.Debug("Command Show")
	name := line.getWord()
	if err := line.atEnd(); err != nil {
		return false, err
	}

	switch name {
	case "", "codepage":
		session.Printf("codepage: %s", session.Codec.Name())
	case "codepages":
		for _, id := range codepage.IDs() {
			mark := " "
			if id.String() == session.Codec.Name() {
				mark = "*"
			}
			session.Printf("%s %s", mark, id)
		}
	case "table":
		showTable(session)
	default:
		return false, errors.New("unknown show option: " + name)
	}
	return false, nil
}

// Dump EBCDIC to ASCII table, 16 bytes per row. Unmapped bytes show as --.
func showTable(session *command.Session) {
	tables := session.Codec.Tables()
	var str strings.Builder
	str.WriteString("   ")
	for col := range 16 {
		str.WriteString(" x")
		hex.FormatDigit(&str, byte(col))
	}
	session.Printf("%s", str.String())

	for row := range 16 {
		str.Reset()
		hex.FormatDigit(&str, byte(row))
		str.WriteString("x ")
		for col := range 16 {
			str.WriteByte(' ')
			by, ok := tables.ToASCII(byte(row<<4 | col))
			if !ok {
				str.WriteString("--")
				continue
			}
			hex.FormatByte(&str, by)
		}
		session.Printf("%s", str.String())
	}
	if unresolved := tables.Unresolved(); len(unresolved) != 0 {
		str.Reset()
		str.WriteString("unresolved: ")
		hex.FormatBytes(&str, true, unresolved)
		session.Printf("%s", strings.TrimSpace(str.String()))
	}
}

// Show command completion.
func showComplete(line *cmdLine) []string {
	opt := line.getWord()
	return line.complete(line.line[:line.pos-len(opt)], opt, command.ShowOptions)
}

// Load code page definition file.
func load(line *cmdLine, session *command.Session) (bool, error) {
	slog.Debug("Command Load")
	name, ok := line.parseQuoteString()
	if !ok {
		return false, errors.New("load requires a file name")
	}
	if err := line.atEnd(); err != nil {
		return false, err
	}
	def, err := codepage.LoadFile(name)
	if err != nil {
		return false, err
	}
	return false, session.Codec.SetEntries(def.Name, def.Entries)
}

// Handle commands that quit the console.
func quit(_ *cmdLine, _ *command.Session) (bool, error) {
	slog.Debug("Command Quit")
	return true, nil
}
