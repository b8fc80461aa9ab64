/*
 * EBCDIC translation tests.
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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/rcornwell/ebcdic/util/codepage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func mustCodec(t *testing.T, id codepage.ID, opts ...Option) *Codec {
	t.Helper()
	c, err := New(id, append([]Option{quiet}, opts...)...)
	require.NoError(t, err)
	return c
}

// Check basic English translation.
func TestEnglish(t *testing.T) {
	c := mustCodec(t, codepage.CP037)

	text, err := c.ToASCII("C1")
	require.NoError(t, err)
	assert.Equal(t, "A", text)

	ebcdic, err := c.ToEBCDIC("41")
	require.NoError(t, err)
	assert.Equal(t, "C1", ebcdic)

	text, err = c.ToASCII("C885939396")
	require.NoError(t, err)
	assert.Equal(t, "Hello", text)
	assert.Equal(t, "0037", c.Name())
}

func TestCaseInsensitive(t *testing.T) {
	c := mustCodec(t, codepage.CP037)

	lower, err := c.ToASCII("c1c2")
	require.NoError(t, err)
	upper, err := c.ToASCII("C1C2")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
	assert.Equal(t, "AB", upper)

	lower, err = c.ToEBCDIC("6162")
	require.NoError(t, err)
	assert.Equal(t, "8182", lower)
}

// National characters.
func TestNational(t *testing.T) {
	tests := []struct {
		id     codepage.ID
		ebcdic string
		text   string
		iso    byte
	}{
		{codepage.CP037, "4A", "¢", 0xA2},
		{codepage.CP037, "5F", "¬", 0xAC},
		{codepage.CP273, "4A", "Ä", 0xC4},
		{codepage.CP273, "7C", "§", 0xA7},
		{codepage.CP273, "A1", "ß", 0xDF},
		{codepage.CP273, "B5", "@", 0x40},
		{codepage.CP278, "5B", "Å", 0xC5},
		{codepage.CP278, "7B", "Ä", 0xC4},
		{codepage.CP278, "7C", "Ö", 0xD6},
		{codepage.CP278, "EC", "@", 0x40},
	}

	for _, test := range tests {
		c := mustCodec(t, test.id)
		text, err := c.ToASCII(test.ebcdic)
		require.NoError(t, err)
		assert.Equal(t, test.text, text, "codepage %s byte %s", test.id, test.ebcdic)

		iso, err := c.ToISO(test.ebcdic)
		require.NoError(t, err)
		assert.Equal(t, []byte{test.iso}, iso)

		back, err := c.ToEBCDIC(fmt.Sprintf("%02X", test.iso))
		require.NoError(t, err)
		assert.Equal(t, test.ebcdic, back)
	}
}

// Every mapped EBCDIC byte must come back unchanged.
func TestRoundTrip(t *testing.T) {
	for _, id := range codepage.IDs() {
		tables := mustCodec(t, id).Tables()
		for i := range 256 {
			ascii, ok := tables.ToASCII(byte(i))
			require.True(t, ok, "codepage %s byte %02X not mapped", id, i)
			ebcdic, ok := tables.ToEBCDIC(ascii)
			require.True(t, ok)
			assert.Equal(t, byte(i), ebcdic, "codepage %s byte %02X", id, i)
		}
		assert.Empty(t, tables.Unresolved())
	}
}

func TestZeroFixedPoint(t *testing.T) {
	for _, id := range codepage.IDs() {
		text, err := mustCodec(t, id).ToISO("00")
		require.NoError(t, err)
		assert.Equal(t, []byte{0}, text)
	}

	// Unresolved entry would otherwise claim slot 0.
	c, err := NewFromEntries("test", []codepage.Entry{{Byte: 0x05, EBCDIC: 'Q', ASCII: 'R'}}, quiet)
	require.NoError(t, err)
	by, ok := c.Tables().ToASCII(0x00)
	assert.True(t, ok)
	assert.Equal(t, byte(0x00), by)
}

// Unmatched ASCII roles translate to 00, or fail when strict.
func TestUnresolved(t *testing.T) {
	entries := []codepage.Entry{
		{Byte: 0x41, EBCDIC: 'A', ASCII: 'A'},
		{Byte: 0x05, EBCDIC: 'Q', ASCII: 'R'},
	}

	c, err := NewFromEntries("test", entries, quiet)
	require.NoError(t, err)
	code, err := c.ToEBCDIC("05")
	require.NoError(t, err)
	assert.Equal(t, "00", code)
	assert.Equal(t, []byte{0x05}, c.Tables().Unresolved())

	_, err = NewFromEntries("test", entries, quiet, WithStrict(true))
	var joinErr *UnresolvedJoinError
	require.ErrorAs(t, err, &joinErr)
	assert.Equal(t, "test", joinErr.Codepage)
	assert.Equal(t, []byte{0x05}, joinErr.Bytes)
}

func TestStrictBuiltIn(t *testing.T) {
	for _, id := range codepage.IDs() {
		_, err := New(id, quiet, WithStrict(true))
		assert.NoError(t, err)
	}
}

// Bytes missing from table are errors, not 00.
func TestInvalidByte(t *testing.T) {
	c, err := NewFromEntries("sparse", []codepage.Entry{{Byte: 0x41, EBCDIC: 'A', ASCII: 'A'}}, quiet)
	require.NoError(t, err)

	_, err = c.ToASCII("41c1")
	var byteErr *InvalidByteSequenceError
	require.ErrorAs(t, err, &byteErr)
	assert.Equal(t, "C1", byteErr.Token)
	assert.True(t, errors.Is(err, ErrInvalidByteSequence))

	_, err = c.ToEBCDIC("42")
	require.ErrorAs(t, err, &byteErr)
	assert.Equal(t, "42", byteErr.Token)

	_, err = c.CharToASCII("c1")
	require.ErrorAs(t, err, &byteErr)
	assert.Equal(t, "C1", byteErr.Token)

	_, err = c.Decode([]byte{0x41, 0x99})
	assert.ErrorIs(t, err, ErrInvalidByteSequence)
}

func TestMalformed(t *testing.T) {
	c := mustCodec(t, codepage.CP037)

	_, err := c.ToASCII("AA2")
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = c.ToEBCDIC("4")
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = c.ToASCII("C1zz")
	var byteErr *InvalidByteSequenceError
	require.ErrorAs(t, err, &byteErr)
	assert.Equal(t, "ZZ", byteErr.Token)

	_, err = c.CharToEBCDIC("4")
	assert.ErrorIs(t, err, ErrInvalidByteSequence)

	text, err := c.ToASCII("")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestCharLookup(t *testing.T) {
	c := mustCodec(t, codepage.CP037)

	code, err := c.CharToASCII("c1")
	require.NoError(t, err)
	assert.Equal(t, "41", code)

	code, err = c.CharToEBCDIC("20")
	require.NoError(t, err)
	assert.Equal(t, "40", code)
}

func TestDeterministic(t *testing.T) {
	c := mustCodec(t, codepage.CP278)
	first, err := c.ToEBCDIC("48656C6C6F")
	require.NoError(t, err)
	for range 10 {
		again, err := c.ToEBCDIC("48656C6C6F")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEncodeString(t *testing.T) {
	c := mustCodec(t, codepage.CP037)
	code, err := c.EncodeString("Hello")
	require.NoError(t, err)
	assert.Equal(t, "C885939396", code)

	c = mustCodec(t, codepage.CP273)
	code, err = c.EncodeString("Grüße")
	require.NoError(t, err)
	assert.Equal(t, "C799D0A185", code)

	_, err = c.EncodeString("Ā")
	assert.ErrorIs(t, err, ErrInvalidByteSequence)
}

// Every Latin-1 character survives text to EBCDIC and back.
func TestLatin1Text(t *testing.T) {
	for _, id := range codepage.IDs() {
		c := mustCodec(t, id)
		for i := range 256 {
			text := string(rune(i))
			code, err := c.EncodeString(text)
			require.NoError(t, err, "%s U+%04X", id, i)
			back, err := c.ToASCII(code)
			require.NoError(t, err)
			assert.Equal(t, text, back, "%s U+%04X", id, i)
		}
	}

	c := mustCodec(t, codepage.CP037)
	text, err := c.ToASCII("9F")
	require.NoError(t, err)
	assert.Equal(t, "\u00a4", text)

	for _, text := range []string{"€", "A\u0100", "\uFFFD"} {
		_, err := c.EncodeString(text)
		var invalid *InvalidByteSequenceError
		require.ErrorAs(t, err, &invalid, text)
	}
}

// Codec not made by New has no tables.
func TestZeroCodec(t *testing.T) {
	var c Codec
	assert.Equal(t, "", c.Name())
	assert.Nil(t, c.Tables())

	_, err := c.ToASCII("C1")
	assert.ErrorIs(t, err, ErrNoTable)
	_, err = c.ToISO("C1")
	assert.ErrorIs(t, err, ErrNoTable)
	_, err = c.ToEBCDIC("41")
	assert.ErrorIs(t, err, ErrNoTable)
	_, err = c.EncodeString("A")
	assert.ErrorIs(t, err, ErrNoTable)
	_, err = c.Decode([]byte{0xC1})
	assert.ErrorIs(t, err, ErrNoTable)
	_, err = c.Encode([]byte("A"))
	assert.ErrorIs(t, err, ErrNoTable)
	_, err = c.CharToASCII("C1")
	assert.ErrorIs(t, err, ErrNoTable)
	_, err = c.CharToEBCDIC("41")
	assert.ErrorIs(t, err, ErrNoTable)

	WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))(&c)
	require.NoError(t, c.SetTable(codepage.CP037))
	text, err := c.ToASCII("C1")
	require.NoError(t, err)
	assert.Equal(t, "A", text)
}

func TestRawBytes(t *testing.T) {
	c := mustCodec(t, codepage.CP037)
	ebcdic, err := c.Encode([]byte("IBM"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC9, 0xC2, 0xD4}, ebcdic)

	ascii, err := c.Decode(ebcdic)
	require.NoError(t, err)
	assert.Equal(t, []byte("IBM"), ascii)
}

// Failing rebuild keeps old tables.
func TestSetTable(t *testing.T) {
	c := mustCodec(t, codepage.CP037)
	require.NoError(t, c.SetTable(codepage.CP273))
	assert.Equal(t, "0273", c.Name())

	text, err := c.ToASCII("4A")
	require.NoError(t, err)
	assert.Equal(t, "Ä", text)

	err = c.SetTable(codepage.ID(99))
	assert.ErrorIs(t, err, ErrUnknownCodepage)
	assert.Equal(t, "0273", c.Name())

	err = c.SetEntries("broken", []codepage.Entry{{Byte: 1, EBCDIC: 'a', ASCII: 'b'}})
	assert.NoError(t, err)
	assert.Equal(t, "broken", c.Name())

	_, err = New(codepage.ID(1), quiet)
	assert.ErrorIs(t, err, ErrUnknownCodepage)
}

// Readers see either the old or the new code page, never a mix.
func TestConcurrentSwap(t *testing.T) {
	c := mustCodec(t, codepage.CP037)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				text, err := c.ToASCII("4A5A")
				if err != nil {
					t.Error(err)
					return
				}
				if text != "¢!" && text != "ÄÜ" {
					t.Errorf("torn translation: %q", text)
					return
				}
			}
		}()
	}

	for i := range 200 {
		id := codepage.CP037
		if i%2 == 0 {
			id = codepage.CP273
		}
		if err := c.SetTable(id); err != nil {
			t.Error(err)
		}
	}
	close(stop)
	wg.Wait()
}
