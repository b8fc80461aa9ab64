/*
 * Console command session.
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

package command

import (
	"fmt"
	"io"

	"github.com/rcornwell/ebcdic/util/xlat"
)

// Options accepted by set and show commands.
var (
	SetOptions  = []string{"codepage"}
	ShowOptions = []string{"codepage", "codepages", "table"}
)

// State shared by commands of one console.
type Session struct {
	Codec *xlat.Codec // Active translator.
	Out   io.Writer   // Where results are written.
}

func NewSession(codec *xlat.Codec, out io.Writer) *Session {
	return &Session{Codec: codec, Out: out}
}

// Write formatted result line.
func (s *Session) Printf(format string, a ...any) {
	fmt.Fprintf(s.Out, format+"\n", a...)
}
