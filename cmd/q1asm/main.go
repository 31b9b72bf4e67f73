/*
Copyright © 2024 Jeff Berkowitz (pdxjjb@gmail.com)

This program is free software: you can redistribute it and/or modify it
under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful, but
WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public
License along with this program. If not, see
<http://www.gnu.org/licenses/>.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/gmofishsauce/q1/internal/asmcore"
	"github.com/gmofishsauce/q1/internal/asmsrc"
	"github.com/gmofishsauce/q1/internal/q1cfg"
	"github.com/gmofishsauce/q1/internal/q1util"
)

const progName = "q1asm"

var (
	outFlag    = flag.String("o", "", "output file name (default out.lst, out.raw or out.hex by format)")
	rawFlag    = flag.Bool("raw", false, "emit a raw binary image")
	listFlag   = flag.Bool("list", false, "emit an annotated listing")
	hexFlag    = flag.Bool("hex", false, "emit one hex byte per line")
	configFlag = flag.String("config", "", "load defaults from this TOML file instead of the platform default")
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		usage()
	}
	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		q1util.Fatal(progName, err.Error())
	}

	format := chosenFormat(cfg)

	result := asmcore.Assemble(name, fileOpener, cfg.Assembler.IncludeDepth)
	for _, e := range result.Errors {
		q1util.Pr(progName, e.Error())
	}

	// A nil Lines with errors means a pre-Pass-2 failure (preprocessing
	// or Pass 1): no addresses were resolved, so there is nothing
	// sensible to write. A recoverable Pass 2 expression error still
	// produces a full byte stream, address-stable around the bad
	// statement, so output is written even though Errors is non-empty.
	if result.Lines == nil && len(result.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "%s: %d error(s), no output written\n", progName, len(result.Errors))
		os.Exit(len(result.Errors))
	}

	outPath := *outFlag
	if outPath == "" {
		outPath = defaultOutputName(format)
	}

	if err := writeOutput(outPath, format, result.Lines); err != nil {
		q1util.Fatal(progName, err.Error())
	}

	totalBytes := 0
	for _, l := range result.Lines {
		totalBytes += len(l.Bytes)
	}
	fmt.Printf("Errors: %d\nByte count: %d\n", len(result.Errors), totalBytes)
	os.Exit(len(result.Errors))
}

func chosenFormat(cfg *q1cfg.Config) string {
	switch {
	case *rawFlag:
		return "raw"
	case *listFlag:
		return "list"
	case *hexFlag:
		return "hex"
	default:
		return cfg.Assembler.DefaultFormat
	}
}

func loadConfig() (*q1cfg.Config, error) {
	if *configFlag != "" {
		return q1cfg.LoadFrom(*configFlag)
	}
	return q1cfg.Load()
}

func fileOpener(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func defaultOutputName(format string) string {
	switch format {
	case "raw":
		return "out.raw"
	case "hex":
		return "out.hex"
	default:
		return "out.lst"
	}
}

func writeOutput(path string, format string, lines []asmcore.EncodedLine) error {
	var content string
	switch format {
	case "raw":
		return os.WriteFile(path, asmcore.EncodeRaw(lines), 0644)
	case "hex":
		content = asmcore.EncodeHex(lines)
	default:
		content = asmcore.EncodeListing(lines)
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func usage() {
	q1util.Pr(progName, "Usage: q1asm [options] source-file")
	flag.PrintDefaults()
	os.Exit(-1)
}
