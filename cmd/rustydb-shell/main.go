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
Package main is the interactive shell for RustyDB.

The rustydb-shell is a REPL (Read-Eval-Print Loop) client that talks to
a RustyDB server over its HTTP API. Each SQL statement is posted to
/api/query and the JSON response is rendered as an aligned table.

Command Types:
==============

 1. Local commands (prefixed with \):
    - \q or \quit      : Exit the shell
    - \h or \help      : Display help
    - \tables          : List tables (GET /api/tables)
    - \d <table>       : Describe a table (GET /api/tables/{name})
    - \clear           : Clear the screen

 2. SQL statements, terminated by a semicolon. Statements may span
    multiple lines; the shell keeps reading until it sees the
    terminating semicolon.

Usage Examples:
===============

	Connect to a local server:
	  rustydb-shell

	Connect to a remote server:
	  rustydb-shell --url http://192.168.1.100:3000

	Execute one statement and exit:
	  rustydb-shell -e "SELECT * FROM users;"

	Example session:
	  rustydb> CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL);
	  CREATE_TABLE OK
	  rustydb> INSERT INTO users (id, name) VALUES (1, 'Alice');
	  INSERT 1
	  rustydb> SELECT * FROM users;
	  id | name
	  ---+------
	  1  | Alice
	  (1 row)
*/
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/kazuma0606/rustydb/internal/banner"
)

// RequestTimeout is the maximum time to wait for a server response.
const RequestTimeout = 10 * time.Second

// sqlCompletions contains completable keywords for tab completion.
var sqlCompletions = []string{
	// Local commands
	"\\q", "\\quit", "\\h", "\\help", "\\tables", "\\d", "\\describe", "\\clear",
	// Statement keywords
	"SELECT", "INSERT", "UPDATE", "DELETE", "CREATE", "DROP",
	// Clause keywords
	"FROM", "WHERE", "AND", "OR", "LIKE", "LIMIT",
	"VALUES", "INTO", "SET", "TABLE", "IF", "EXISTS", "NOT",
	// Constraints
	"PRIMARY", "KEY", "UNIQUE", "NULL", "DEFAULT",
	// Data types
	"INTEGER", "INT", "BIGINT", "FLOAT", "REAL", "DOUBLE",
	"TEXT", "VARCHAR", "CHAR", "STRING", "BOOLEAN", "BOOL",
	"TIMESTAMP", "DATETIME",
}

// Client talks to the RustyDB HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: RequestTimeout},
	}
}

// errorResponse mirrors the server's error body.
type errorResponse struct {
	Error string `json:"error"`
}

// queryResult mirrors the server's /api/query response body.
type queryResult struct {
	Columns       []string                 `json:"columns"`
	Rows          []map[string]interface{} `json:"rows"`
	AffectedRows  *int                     `json:"affected_rows"`
	StatementType string                   `json:"statement_type"`
}

// tableInfo mirrors the server's table schema response body.
type tableInfo struct {
	Name    string `json:"name"`
	Columns []struct {
		Name        string   `json:"name"`
		DataType    string   `json:"data_type"`
		Constraints []string `json:"constraints"`
	} `json:"columns"`
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(path string, out interface{}) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp.StatusCode, body)
	}
	return json.Unmarshal(body, out)
}

// Ping checks that the server is reachable.
func (c *Client) Ping() error {
	resp, err := c.http.Get(c.baseURL + "/health")
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

// Query posts one SQL statement to /api/query.
func (c *Client) Query(sql string) (*queryResult, error) {
	payload, err := json.Marshal(map[string]string{"sql": sql})
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Post(c.baseURL+"/api/query", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, body)
	}

	var result queryResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Tables lists the table names on the server.
func (c *Client) Tables() ([]string, error) {
	var names []string
	if err := c.get("/api/tables", &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Describe fetches one table's schema.
func (c *Client) Describe(name string) (*tableInfo, error) {
	var info tableInfo
	if err := c.get("/api/tables/"+name, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// decodeError turns an error response body into an error.
func decodeError(status int, body []byte) error {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return fmt.Errorf("%s", er.Error)
	}
	return fmt.Errorf("server returned %d", status)
}

// getHistoryFilePath returns the path to the history file.
func getHistoryFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rustydb_history")
}

// createReadlineInstance creates a configured readline instance with
// history and tab completion.
func createReadlineInstance() (*readline.Instance, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(sqlCompletions))
	for _, word := range sqlCompletions {
		items = append(items, readline.PcItem(word))
	}

	return readline.NewEx(&readline.Config{
		Prompt:            "rustydb> ",
		HistoryFile:       getHistoryFilePath(),
		AutoComplete:      readline.NewPrefixCompleter(items...),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
}

func main() {
	var (
		serverURL   string
		execute     string
		showVersion bool
	)
	flag.StringVar(&serverURL, "url", "http://127.0.0.1:3000", "RustyDB server URL")
	flag.StringVar(&execute, "e", "", "Execute a statement and exit")
	flag.StringVar(&execute, "execute", "", "Execute a statement and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version information and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("rustydb-shell version %s\n", banner.Version)
		fmt.Println(banner.Copyright)
		return
	}

	client := NewClient(serverURL)
	if err := client.Ping(); err != nil {
		fmt.Fprintf(os.Stderr, "cannot reach server at %s: %v\n", serverURL, err)
		os.Exit(1)
	}

	if execute != "" {
		result, err := client.Query(execute)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		printResult(result)
		return
	}

	banner.Print()
	fmt.Printf("Connected to %s\n", serverURL)
	fmt.Println("Type \\h for help, \\q to quit. SQL statements end with ';'.")
	fmt.Println()

	runREPL(client)
}

// runREPL is the main read-eval-print loop.
func runREPL(client *Client) {
	rl, err := createReadlineInstance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize line editing: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	var buf strings.Builder

	for {
		if buf.Len() > 0 {
			rl.SetPrompt("      -> ")
		} else {
			rl.SetPrompt("rustydb> ")
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buf.Reset()
			continue
		}
		if err == io.EOF {
			fmt.Println("Goodbye!")
			return
		}
		if err != nil {
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		// Local commands run immediately, even mid-statement.
		if buf.Len() == 0 && strings.HasPrefix(input, "\\") {
			if quit := handleLocalCommand(client, input); quit {
				return
			}
			continue
		}

		buf.WriteString(input)
		if !strings.HasSuffix(input, ";") {
			buf.WriteString(" ")
			continue
		}

		sql := buf.String()
		buf.Reset()

		result, err := client.Query(sql)
		if err != nil {
			fmt.Printf("ERROR: %v\n", err)
			continue
		}
		printResult(result)
	}
}

// handleLocalCommand executes a backslash command. It returns true when
// the shell should exit.
func handleLocalCommand(client *Client, input string) bool {
	parts := strings.Fields(input)
	switch parts[0] {
	case "\\q", "\\quit":
		fmt.Println("Goodbye!")
		return true

	case "\\h", "\\help":
		printHelp()

	case "\\tables":
		names, err := client.Tables()
		if err != nil {
			fmt.Printf("ERROR: %v\n", err)
			return false
		}
		if len(names) == 0 {
			fmt.Println("(no tables)")
			return false
		}
		for _, name := range names {
			fmt.Println(name)
		}

	case "\\d", "\\describe":
		if len(parts) < 2 {
			fmt.Println("usage: \\d <table>")
			return false
		}
		info, err := client.Describe(parts[1])
		if err != nil {
			fmt.Printf("ERROR: %v\n", err)
			return false
		}
		printTableInfo(info)

	case "\\clear":
		fmt.Print("\033[2J\033[H")

	default:
		fmt.Printf("unknown command: %s (try \\h)\n", parts[0])
	}
	return false
}

func printHelp() {
	fmt.Println("Local commands:")
	fmt.Println("  \\q, \\quit      Exit the shell")
	fmt.Println("  \\h, \\help      Show this help")
	fmt.Println("  \\tables        List tables")
	fmt.Println("  \\d <table>     Describe a table")
	fmt.Println("  \\clear         Clear the screen")
	fmt.Println()
	fmt.Println("SQL statements end with ';' and may span multiple lines:")
	fmt.Println("  CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL);")
	fmt.Println("  INSERT INTO users (id, name) VALUES (1, 'Alice');")
	fmt.Println("  SELECT * FROM users WHERE id = 1;")
}

// printResult renders a query result. SELECT results print as an
// aligned table; writes print the statement type and affected count.
func printResult(result *queryResult) {
	if result.StatementType == "SELECT" {
		printRows(result.Columns, result.Rows)
		return
	}
	if result.AffectedRows != nil {
		fmt.Printf("%s %d\n", result.StatementType, *result.AffectedRows)
		return
	}
	fmt.Printf("%s OK\n", result.StatementType)
}

// printRows renders rows as an aligned text table in column order.
func printRows(columns []string, rows []map[string]interface{}) {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for i, col := range columns {
			cells[r][i] = formatCell(row[col])
			if len(cells[r][i]) > widths[i] {
				widths[i] = len(cells[r][i])
			}
		}
	}

	header := make([]string, len(columns))
	sep := make([]string, len(columns))
	for i, col := range columns {
		header[i] = pad(col, widths[i])
		sep[i] = strings.Repeat("-", widths[i])
	}
	fmt.Println(strings.Join(header, " | "))
	fmt.Println(strings.Join(sep, "-+-"))
	for _, row := range cells {
		for i, cell := range row {
			row[i] = pad(cell, widths[i])
		}
		fmt.Println(strings.Join(row, " | "))
	}

	if len(rows) == 1 {
		fmt.Println("(1 row)")
	} else {
		fmt.Printf("(%d rows)\n", len(rows))
	}
}

// printTableInfo renders a table schema.
func printTableInfo(info *tableInfo) {
	fmt.Printf("Table: %s\n", info.Name)
	nameW, typeW := len("Column"), len("Type")
	for _, col := range info.Columns {
		if len(col.Name) > nameW {
			nameW = len(col.Name)
		}
		if len(col.DataType) > typeW {
			typeW = len(col.DataType)
		}
	}
	fmt.Printf("%s | %s | Constraints\n", pad("Column", nameW), pad("Type", typeW))
	fmt.Printf("%s-+-%s-+------------\n", strings.Repeat("-", nameW), strings.Repeat("-", typeW))
	for _, col := range info.Columns {
		fmt.Printf("%s | %s | %s\n", pad(col.Name, nameW), pad(col.DataType, typeW), strings.Join(col.Constraints, ", "))
	}
}

// formatCell renders one JSON value for table output.
func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case float64:
		// encoding/json decodes all numbers as float64; print
		// integral values without the trailing .0
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
