/*
 * Console command completion.
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
	"strings"
)

// Called to complete a command line, during line editing.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	// Still typing command name, offer all that match.
	if line.pos >= len(line.line) {
		leading := line.line[:line.pos-len(name)]
		matches := []string{}
		for _, m := range prefixList(name) {
			matches = append(matches, leading+m.Name+" ")
		}
		return matches
	}

	// We have a command, let it try and complete it.
	match := matchList(name)
	if len(match) != 1 || match[0].Complete == nil {
		return nil
	}
	return match[0].Complete(&line)
}

// Return leading text followed by each name starting with word.
func (line *cmdLine) complete(leading string, word string, names []string) []string {
	matches := []string{}
	word = strings.ToLower(word)
	for _, name := range names {
		if strings.HasPrefix(name, word) {
			matches = append(matches, leading+name+" ")
		}
	}
	return matches
}
