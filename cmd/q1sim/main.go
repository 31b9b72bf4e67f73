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
	"flag"
	"fmt"
	"os"

	"github.com/gmofishsauce/q1/internal/q1cfg"
	"github.com/gmofishsauce/q1/internal/q1util"
	"github.com/gmofishsauce/q1/internal/q1vm"
)

const progName = "q1sim"

var (
	aFlag      = flag.Int("a", -1, "seed register A (0-255, default from config)")
	bFlag      = flag.Int("b", -1, "seed register B (0-255, default from config)")
	cFlag      = flag.Int("c", -1, "seed register C (0-255, default from config)")
	configFlag = flag.String("config", "", "load defaults from this TOML file instead of the platform default")
	statusFlag = flag.Bool("status", false, "display periodic ANSI machine status")
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

	program, err := os.ReadFile(name)
	if err != nil {
		q1util.Fatal(progName, fmt.Sprintf("open %s: %s", name, err))
	}

	m := q1vm.NewMachine()
	m.A = seedOr(*aFlag, cfg.Simulator.SeedA)
	m.B = seedOr(*bFlag, cfg.Simulator.SeedB)
	m.C = seedOr(*cFlag, cfg.Simulator.SeedC)

	n, truncated := m.Mem.Load(program)
	if truncated {
		q1util.Pr(progName, fmt.Sprintf("WARN: input file too large, truncated at %d bytes", n))
	}

	var reporter func(*q1vm.Machine)
	if *statusFlag || cfg.Simulator.StatusInterval > 0 {
		reporter = newStatusReporter(os.Stdout, intervalOr(cfg.Simulator.StatusInterval))
	}

	m.Run(reporter)

	for _, e := range m.Errors {
		q1util.Pr(progName, e)
	}

	fmt.Printf("Halted after %d clocks. P=%04X A=%02X B=%02X C=%02X\n",
		m.Clocks, m.P, m.A, m.B, m.C)
}

func seedOr(flagVal int, def uint8) uint8 {
	if flagVal < 0 {
		return def
	}
	return uint8(flagVal)
}

func intervalOr(configured int) int {
	if configured > 0 {
		return configured
	}
	return 1
}

func loadConfig() (*q1cfg.Config, error) {
	if *configFlag != "" {
		return q1cfg.LoadFrom(*configFlag)
	}
	return q1cfg.Load()
}

func usage() {
	q1util.Pr(progName, "Usage: q1sim [options] image-file")
	flag.PrintDefaults()
	os.Exit(1)
}
