/*
 * Hex string tokenizing.
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
	"strconv"
	"strings"
)

// Split hex string into two character tokens, left to right.
// An odd trailing character is returned as a one character token.
//
//	"AA2E30EE" -> ["AA", "2E", "30", "EE"]
func SplitHex(str string) []string {
	tokens := make([]string, 0, (len(str)+1)/2)
	for len(str) > 2 {
		tokens = append(tokens, str[:2])
		str = str[2:]
	}
	if str != "" {
		tokens = append(tokens, str)
	}
	return tokens
}

// Split and validate hex string, returning byte values. Fails on odd
// length before looking at any token.
func parseHex(str string) ([]byte, error) {
	if len(str)%2 != 0 {
		return nil, ErrMalformedInput
	}
	tokens := SplitHex(str)
	codes := make([]byte, len(tokens))
	for i, token := range tokens {
		code, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		codes[i] = code
	}
	return codes, nil
}

// Convert one token to byte. Token is normalized to upper case.
func parseToken(token string) (byte, error) {
	token = strings.ToUpper(token)
	if len(token) != 2 {
		return 0, &InvalidByteSequenceError{Token: token}
	}
	value, err := strconv.ParseUint(token, 16, 8)
	if err != nil {
		return 0, &InvalidByteSequenceError{Token: token}
	}
	return byte(value), nil
}
