/*
 * EBCDIC to ASCII translator.
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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"
	reader "github.com/rcornwell/ebcdic/command/reader"
	config "github.com/rcornwell/ebcdic/config/configparser"
	"github.com/rcornwell/ebcdic/config/xlatconfig"
	"github.com/rcornwell/ebcdic/util/codepage"
	"github.com/rcornwell/ebcdic/util/hex"
	logger "github.com/rcornwell/ebcdic/util/logger"
	"github.com/rcornwell/ebcdic/util/xlat"
)

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optCodepage := getopt.StringLong("codepage", 'p', "", "Codepage 0037, 0273 or 0278")
	optStrict := getopt.BoolLong("strict", 's', "Fail on incomplete codepage tables")
	optASCII := getopt.StringLong("ascii", 'a', "", "Convert EBCDIC hex to text")
	optISO := getopt.StringLong("iso", 'i', "", "Convert EBCDIC hex to ISO-8859-1 hex")
	optEBCDIC := getopt.StringLong("ebcdic", 'e', "", "Convert ISO-8859-1 hex to EBCDIC hex")
	optText := getopt.StringLong("text", 't', "", "Convert text to EBCDIC hex")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	if *optConfig != "" {
		if err := config.LoadConfigFile(*optConfig); err != nil {
			fmt.Fprintln(os.Stderr, "Configuration: "+err.Error())
			os.Exit(1)
		}
	}
	settings := xlatconfig.Current()

	if *optLogFile != "" {
		settings.LogFile = *optLogFile
	}
	var logFile io.Writer
	if settings.LogFile != "" {
		file, err := os.Create(settings.LogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to create log file: "+err.Error())
			os.Exit(1)
		}
		defer file.Close()
		logFile = file
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger := slog.New(logger.NewHandler(logFile, &slog.HandlerOptions{Level: programLevel}, *optDebug))
	slog.SetDefault(Logger)

	if *optCodepage != "" {
		id, err := codepage.Parse(*optCodepage)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		settings.Codepage = id
		settings.TableFile = ""
	}
	if *optStrict {
		settings.Strict = true
	}

	codec, err := settings.NewCodec(Logger)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	done, err := convert(codec, *optASCII, *optISO, *optEBCDIC, *optText)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	if done {
		return
	}

	reader.ConsoleReader(codec)
}

// Run one shot conversions. Returns true if any were requested.
func convert(codec *xlat.Codec, ascii, iso, ebcdic, text string) (bool, error) {
	done := false
	if ascii != "" {
		str, err := codec.ToASCII(ascii)
		if err != nil {
			return true, err
		}
		fmt.Println(str)
		done = true
	}
	if iso != "" {
		data, err := codec.ToISO(iso)
		if err != nil {
			return true, err
		}
		fmt.Println(hex.Encode(data))
		done = true
	}
	if ebcdic != "" {
		str, err := codec.ToEBCDIC(ebcdic)
		if err != nil {
			return true, err
		}
		fmt.Println(str)
		done = true
	}
	if text != "" {
		str, err := codec.EncodeString(text)
		if err != nil {
			return true, err
		}
		fmt.Println(str)
		done = true
	}
	return done, nil
}
