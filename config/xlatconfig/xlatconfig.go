/*
 * Translator configuration options.
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

package xlatconfig

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	config "github.com/rcornwell/ebcdic/config/configparser"
	"github.com/rcornwell/ebcdic/util/codepage"
	"github.com/rcornwell/ebcdic/util/xlat"
)

// Settings collected from configuration file.
type Settings struct {
	Codepage  codepage.ID // Built in code page to use.
	TableFile string      // External definition, overrides Codepage.
	Strict    bool        // Fail on unresolved table entries.
	LogFile   string      // Name of log file.
}

var (
	mu      sync.Mutex
	current = defaults()
)

func defaults() Settings {
	return Settings{Codepage: codepage.CP037}
}

// register options on initialize.
func init() {
	config.RegisterOptions("CODEPAGE", setCodepage)
	config.RegisterOptions("TABLEFILE", setTableFile)
	config.RegisterOption("LOGFILE", setLogFile)
	config.RegisterSwitch("STRICT", setStrict)
}

// Return copy of current settings.
func Current() Settings {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// Restore defaults.
func Reset() {
	mu.Lock()
	current = defaults()
	mu.Unlock()
}

// Options allowed after a table selection:
//
//	strict | strict=on | strict=off
func tableOptions(name string, opts []config.Option) (*bool, error) {
	var strict *bool
	for _, opt := range opts {
		if !strings.EqualFold(opt.Name, "strict") {
			return nil, fmt.Errorf("%s: unknown option %s", name, opt.Name)
		}
		if len(opt.Value) != 0 {
			return nil, fmt.Errorf("%s: option %s takes no list", name, opt.Name)
		}
		on := true
		switch strings.ToLower(opt.EqualOpt) {
		case "", "on":
		case "off":
			on = false
		default:
			return nil, fmt.Errorf("%s: strict must be on or off, not %s", name, opt.EqualOpt)
		}
		strict = &on
	}
	return strict, nil
}

func setCodepage(value string, opts []config.Option) error {
	id, err := codepage.Parse(value)
	if err != nil {
		return err
	}
	strict, err := tableOptions("codepage", opts)
	if err != nil {
		return err
	}
	mu.Lock()
	current.Codepage = id
	if strict != nil {
		current.Strict = *strict
	}
	mu.Unlock()
	return nil
}

func setTableFile(value string, opts []config.Option) error {
	if value == "" {
		return errors.New("tablefile requires a file name")
	}
	strict, err := tableOptions("tablefile", opts)
	if err != nil {
		return err
	}
	mu.Lock()
	current.TableFile = value
	if strict != nil {
		current.Strict = *strict
	}
	mu.Unlock()
	return nil
}

func setLogFile(value string, _ []config.Option) error {
	mu.Lock()
	defer mu.Unlock()
	if current.LogFile != "" {
		return errors.New("can't have more then one log file, previous: " + current.LogFile)
	}
	current.LogFile = value
	return nil
}

func setStrict(_ string, _ []config.Option) error {
	mu.Lock()
	current.Strict = true
	mu.Unlock()
	return nil
}

// Create codec from settings.
func (s Settings) NewCodec(log *slog.Logger) (*xlat.Codec, error) {
	opts := []xlat.Option{xlat.WithStrict(s.Strict)}
	if log != nil {
		opts = append(opts, xlat.WithLogger(log))
	}

	if s.TableFile != "" {
		def, err := codepage.LoadFile(s.TableFile)
		if err != nil {
			return nil, err
		}
		return xlat.NewFromEntries(def.Name, def.Entries, opts...)
	}
	return xlat.New(s.Codepage, opts...)
}
