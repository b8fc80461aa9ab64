/*
 * EBCDIC translation errors.
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

	"github.com/rcornwell/ebcdic/util/codepage"
)

var (
	ErrUnknownCodepage     = codepage.ErrUnknownCodepage
	ErrInvalidByteSequence = errors.New("invalid char sequence")
	ErrMalformedInput      = errors.New("hex string must have even length")
	ErrNoTable             = errors.New("no codepage selected")
)

// Token that has no entry in translation table.
type InvalidByteSequenceError struct {
	Token string
}

func (e *InvalidByteSequenceError) Error() string {
	return "invalid char sequence " + e.Token
}

func (e *InvalidByteSequenceError) Is(target error) bool {
	return target == ErrInvalidByteSequence
}

// Entries whose ASCII role has no matching EBCDIC role. Only returned
// when tables are built strict.
type UnresolvedJoinError struct {
	Codepage string
	Bytes    []byte
}

func (e *UnresolvedJoinError) Error() string {
	return fmt.Sprintf("codepage %s: %d entries have no EBCDIC counterpart: % X", e.Codepage, len(e.Bytes), e.Bytes)
}
