/*
 * Hex formatting routines.
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

package hex

import "strings"

var hexMap = "0123456789ABCDEF"

// Append two upper case hex digits for byte.
func FormatByte(str *strings.Builder, data byte) {
	str.WriteByte(hexMap[(data>>4)&0xf])
	str.WriteByte(hexMap[data&0xf])
}

// Append hex for each byte, optionally followed by a space.
func FormatBytes(str *strings.Builder, space bool, data []byte) {
	for _, by := range data {
		FormatByte(str, by)
		if space {
			str.WriteByte(' ')
		}
	}
}

func FormatDigit(str *strings.Builder, data byte) {
	str.WriteByte(hexMap[data&0xf])
}

// Return upper case hex string of data.
func Encode(data []byte) string {
	var str strings.Builder
	str.Grow(len(data) * 2)
	FormatBytes(&str, false, data)
	return str.String()
}

// Format one line of a dump: offset, up to 16 bytes of hex, then the
// bytes as Latin-1 characters with controls shown as '.'.
func FormatDump(str *strings.Builder, offset int, data []byte) {
	if len(data) > 16 {
		data = data[:16]
	}
	FormatByte(str, byte(offset>>8))
	FormatByte(str, byte(offset))
	str.WriteString(": ")
	for i := range 16 {
		if i < len(data) {
			FormatByte(str, data[i])
			str.WriteByte(' ')
		} else {
			str.WriteString("   ")
		}
	}
	str.WriteByte(' ')
	for _, by := range data {
		if by < 0x20 || (by >= 0x7f && by < 0xa0) {
			str.WriteByte('.')
			continue
		}
		str.WriteRune(rune(by))
	}
	str.WriteByte('\n')
}
