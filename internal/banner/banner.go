/*
 * Copyright (c) 2026 RustyDB Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package banner provides the startup banner display for RustyDB.

The ASCII art logo is embedded at compile time via the //go:embed
directive, so the binary carries its own branding with no runtime file
dependencies. Colors use ANSI escape sequences.
*/
package banner

import (
	_ "embed" // Required for the //go:embed directive
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/kazuma0606/rustydb/internal/config"
)

// banner contains the ASCII art logo loaded from banner.txt at compile
// time.
//
//go:embed banner.txt
var banner string

// ANSI escape codes for terminal text formatting.
const (
	AnsiRed    = "\033[31m"
	AnsiGreen  = "\033[32m"
	AnsiYellow = "\033[33m"
	AnsiCyan   = "\033[36m"
	AnsiReset  = "\033[0m"
	AnsiBold   = "\033[1m"
	AnsiDim    = "\033[2m"
)

// Version information for the RustyDB application.
const (
	Version   = "0.3.1"
	Copyright = "(c)2026 RustyDB Authors"
	License   = "Licensed under Apache 2.0"
)

// Print displays the startup banner with version and copyright
// information. Call once at application startup.
func Print() {
	fmt.Println(AnsiRed + banner + AnsiReset)
	fmt.Println(AnsiRed + AnsiBold + ":: RustyDB ::                   (v" + Version + ")" + AnsiReset)
	fmt.Println(AnsiGreen + AnsiBold + Copyright + AnsiReset)
	fmt.Println(AnsiGreen + AnsiBold + License + AnsiReset)
	fmt.Println()
}

// PrintServerWithConfig prints the server banner with the effective
// configuration, then a separator before log output starts.
func PrintServerWithConfig(cfg *config.Config) {
	PrintServerWithConfigTo(os.Stdout, cfg)
}

// PrintServerWithConfigTo writes the server banner with configuration
// to the specified writer.
func PrintServerWithConfigTo(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, AnsiRed+banner+AnsiReset)
	fmt.Fprintln(w, AnsiRed+AnsiBold+":: RustyDB Server ::            (v"+Version+")"+AnsiReset)
	fmt.Fprintln(w, AnsiDim+"  Minimal In-Memory Relational Database"+AnsiReset)
	fmt.Fprintln(w)

	printConfigSource(w, cfg)
	printCompactConfig(w, cfg)

	fmt.Fprintln(w, AnsiDim+"  "+Copyright+AnsiReset)
	fmt.Fprintln(w)

	printLogSeparator(w)
}

// PrintLogSeparator prints a visual separator before logs start.
func PrintLogSeparator() {
	printLogSeparator(os.Stdout)
}

func printLogSeparator(w io.Writer) {
	const lineWidth = 78
	text := " LOGS START HERE "
	padding := (lineWidth - len(text) - 4) / 2
	if padding < 0 {
		padding = 0
	}
	line := strings.Repeat("-", padding)
	fmt.Fprintf(w, "  %svv%s %s%s%s %svv%s\n",
		AnsiYellow, line,
		AnsiBold, text, AnsiReset+AnsiYellow,
		line, AnsiReset)
	fmt.Fprintln(w)
}

func printConfigSource(w io.Writer, cfg *config.Config) {
	fmt.Fprint(w, "  "+AnsiDim+"Config: "+AnsiReset)
	if cfg.ConfigFile != "" {
		fmt.Fprintln(w, AnsiYellow+cfg.ConfigFile+AnsiReset)
	} else {
		fmt.Fprintln(w, AnsiDim+"defaults + environment"+AnsiReset)
	}
	fmt.Fprintln(w)
}

func printCompactConfig(w io.Writer, cfg *config.Config) {
	const lineWidth = 78

	printSectionHeader(w, "Server", lineWidth)
	col1 := fmtKV("Listen", AnsiGreen+cfg.Addr()+AnsiReset)
	col2 := fmtKV("Log", cfg.LogLevel)
	col3 := fmtKV("Shutdown", fmt.Sprintf("%ds", cfg.ShutdownTimeoutSecs))
	printRow3(w, col1, col2, col3)
	fmt.Fprintln(w)

	printSectionHeader(w, "Storage", lineWidth)
	col1 = fmtKV("Engine", AnsiYellow+"in-memory"+AnsiReset)
	col2 = AnsiDim + "(data is not persisted across restarts)" + AnsiReset
	printRow2(w, col1, col2)
	fmt.Fprintln(w)

	printSectionHeader(w, "Runtime", lineWidth)
	col1 = fmtKV("CPUs", fmt.Sprintf("%d", runtime.NumCPU()))
	col2 = fmtKV("GOMAXPROCS", fmt.Sprintf("%d", runtime.GOMAXPROCS(0)))
	col3 = fmtKV("Go", runtime.Version())
	printRow3(w, col1, col2, col3)
	fmt.Fprintln(w)
}

func printSectionHeader(w io.Writer, title string, width int) {
	titleLen := len(title) + 4 // "[ title ]"
	leftPad := 2
	rightPad := width - leftPad - titleLen
	if rightPad < 0 {
		rightPad = 0
	}
	fmt.Fprintf(w, "  %s[ %s%s%s ]%s%s\n",
		AnsiDim+strings.Repeat("-", leftPad),
		AnsiReset+AnsiCyan+AnsiBold, title, AnsiReset+AnsiDim,
		strings.Repeat("-", rightPad),
		AnsiReset)
}

func fmtKV(key, value string) string {
	return fmt.Sprintf("%s%s:%s %s", AnsiDim, key, AnsiReset, value)
}

func printRow3(w io.Writer, col1, col2, col3 string) {
	fmt.Fprintf(w, "  %-32s %-26s %s\n", col1, col2, col3)
}

func printRow2(w io.Writer, col1, col2 string) {
	fmt.Fprintf(w, "  %-40s %s\n", col1, col2)
}
