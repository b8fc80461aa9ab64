/*
 * Console command tests.
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
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	command "github.com/rcornwell/ebcdic/command/command"
	"github.com/rcornwell/ebcdic/util/codepage"
	"github.com/rcornwell/ebcdic/util/xlat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) (*command.Session, *bytes.Buffer) {
	t.Helper()
	codec, err := xlat.New(codepage.CP037, xlat.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	var out bytes.Buffer
	return command.NewSession(codec, &out), &out
}

// Run command expecting it to succeed, return output.
func run(t *testing.T, session *command.Session, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	quit, err := ProcessCommand(line, session)
	require.NoError(t, err, line)
	assert.False(t, quit)
	return out.String()
}

func TestConvertCommands(t *testing.T) {
	session, out := newSession(t)

	assert.Equal(t, "AB\n", run(t, session, out, "ascii C1 C2"))
	assert.Equal(t, "AB\n", run(t, session, out, "A c1c2 # comment"))
	assert.Equal(t, "C1C2\n", run(t, session, out, "ebcdic 41 42"))
	assert.Equal(t, "C885939396\n", run(t, session, out, `text "Hello"`))
	assert.Equal(t, "7F\n", run(t, session, out, `text """"`))
	assert.Equal(t, "AA 2E 30 EE\n", run(t, session, out, "split AA2E30EE"))
	assert.Equal(t, "AA 2\n", run(t, session, out, "sp AA2"))

	dump := run(t, session, out, "iso C1")
	assert.True(t, strings.HasPrefix(dump, "0000: 41 "), dump)
	assert.True(t, strings.HasSuffix(dump, " A\n"), dump)
}

func TestConvertErrors(t *testing.T) {
	session, _ := newSession(t)

	_, err := ProcessCommand("ascii AA2", session)
	assert.ErrorIs(t, err, xlat.ErrMalformedInput)

	_, err = ProcessCommand("ebcdic ZZ", session)
	assert.ErrorIs(t, err, xlat.ErrInvalidByteSequence)

	_, err = ProcessCommand("text", session)
	assert.Error(t, err)

	_, err = ProcessCommand(`text "abc" more`, session)
	assert.Error(t, err)
}

func TestMatching(t *testing.T) {
	session, _ := newSession(t)

	quit, err := ProcessCommand("", session)
	assert.NoError(t, err)
	assert.False(t, quit)

	quit, err = ProcessCommand("   # nothing", session)
	assert.NoError(t, err)
	assert.False(t, quit)

	_, err = ProcessCommand("s 41", session)
	assert.Error(t, err)

	_, err = ProcessCommand("bogus", session)
	assert.Error(t, err)

	_, err = ProcessCommand("qui", session)
	assert.Error(t, err)

	_, err = ProcessCommand("1234", session)
	assert.Error(t, err)

	quit, err = ProcessCommand("QUIT", session)
	assert.NoError(t, err)
	assert.True(t, quit)
}

func TestSetShow(t *testing.T) {
	session, out := newSession(t)

	assert.Equal(t, "codepage: 0037\n", run(t, session, out, "show"))
	run(t, session, out, "set codepage 273")
	assert.Equal(t, "0273", session.Codec.Name())
	assert.Contains(t, run(t, session, out, "sh codepages"), "* 0273")
	assert.Equal(t, "Ä\n", run(t, session, out, "ascii 4A"))

	_, err := ProcessCommand("set codepage 500", session)
	assert.ErrorIs(t, err, codepage.ErrUnknownCodepage)
	assert.Equal(t, "0273", session.Codec.Name())

	_, err = ProcessCommand("set bogus", session)
	assert.Error(t, err)
	_, err = ProcessCommand("set", session)
	assert.Error(t, err)
	_, err = ProcessCommand("show bogus", session)
	assert.Error(t, err)

	run(t, session, out, "set codepage cp037")
	table := run(t, session, out, "show table")
	lines := strings.Split(strings.TrimSuffix(table, "\n"), "\n")
	require.Len(t, lines, 17)
	assert.Equal(t, "Cx  7B 41 42 43 44 45 46 47 48 49 AD F4 F6 F2 F3 F5", lines[13])
}

func TestLoad(t *testing.T) {
	session, out := newSession(t)
	name := filepath.Join(t.TempDir(), "tiny.yaml")
	def := "name: tiny\nentries:\n  - {hex: \"C1\", ebcdic: \"A\", ascii: \"B\"}\n"
	require.NoError(t, os.WriteFile(name, []byte(def), 0o600))

	run(t, session, out, `load "`+name+`"`)
	assert.Equal(t, "tiny", session.Codec.Name())

	table := run(t, session, out, "show table")
	assert.Contains(t, table, "unresolved: C1")

	_, err := ProcessCommand(`load "`+name+`.missing"`, session)
	assert.Error(t, err)
	_, err = ProcessCommand("load", session)
	assert.Error(t, err)
}

func TestComplete(t *testing.T) {
	assert.Len(t, CompleteCmd(""), len(cmdList))
	assert.Equal(t, []string{"set ", "show ", "split "}, CompleteCmd("s"))
	assert.Equal(t, []string{"  quit "}, CompleteCmd("  q"))
	assert.Equal(t, []string{"set codepage "}, CompleteCmd("set co"))
	assert.Equal(t, []string{"set codepage 0273 ", "set codepage 0278 "}, CompleteCmd("set codepage 02"))
	assert.Equal(t, []string{"show codepage ", "show codepages "}, CompleteCmd("show code"))
	assert.Equal(t, []string{"sh table "}, CompleteCmd("sh t"))
	assert.Empty(t, CompleteCmd("ascii C"))
	assert.Empty(t, CompleteCmd("zz "))
}
