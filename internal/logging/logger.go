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
Package logging provides structured logging for RustyDB.

Loggers are component-scoped and emit either human-readable text or
line-delimited JSON, controlled globally. Messages carry key-value
fields:

	logger := logging.NewLogger("server")
	logger.Info("listening", "addr", addr)
	logger.Error("query failed", "error", err, "request_id", id)

Request tracking assigns each incoming HTTP request a unique ID so the
access log line and any error lines it produces can be correlated.
*/
package logging

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	// DEBUG level for detailed debugging information.
	DEBUG Level = iota
	// INFO level for general operational information.
	INFO
	// WARN level for warning conditions.
	WARN
	// ERROR level for error conditions.
	ERROR
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level. Unknown strings map to INFO.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DEBUG
	case "INFO", "info":
		return INFO
	case "WARN", "warn", "WARNING", "warning":
		return WARN
	case "ERROR", "error":
		return ERROR
	default:
		return INFO
	}
}

// Entry is a single log record with its metadata.
type Entry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Component string                 `json:"component"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Logger writes structured log entries for one component.
type Logger struct {
	component string
	mu        sync.Mutex
}

// global logger settings, shared by all loggers.
var (
	globalMu     sync.RWMutex
	globalLevel            = INFO
	globalOutput io.Writer = os.Stdout
	globalJSON             = false
)

// SetGlobalLevel sets the minimum level that will be written.
func SetGlobalLevel(level Level) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLevel = level
}

// SetGlobalOutput redirects all loggers to w.
func SetGlobalOutput(w io.Writer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalOutput = w
}

// SetJSONMode switches between text and line-delimited JSON output.
func SetJSONMode(enabled bool) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalJSON = enabled
}

// NewLogger creates a Logger for the given component name.
func NewLogger(component string) *Logger {
	return &Logger{component: component}
}

// log builds an entry from msg and alternating key-value args and
// writes it if level clears the global threshold.
func (l *Logger) log(level Level, msg string, args ...interface{}) {
	globalMu.RLock()
	minLevel := globalLevel
	output := globalOutput
	jsonMode := globalJSON
	globalMu.RUnlock()

	if level < minLevel {
		return
	}

	entry := Entry{
		Timestamp: time.Now().UTC(),
		Level:     level.String(),
		Component: l.component,
		Message:   msg,
	}
	if len(args) > 0 {
		entry.Fields = make(map[string]interface{}, len(args)/2)
		for i := 0; i+1 < len(args); i += 2 {
			key, ok := args[i].(string)
			if !ok {
				key = fmt.Sprintf("arg%d", i)
			}
			entry.Fields[key] = args[i+1]
		}
		if len(args)%2 != 0 {
			entry.Fields["extra"] = args[len(args)-1]
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if jsonMode {
		writeJSON(output, entry)
	} else {
		writeText(output, entry)
	}
}

func writeJSON(w io.Writer, entry Entry) {
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(w, "ERROR: failed to marshal log entry: %v\n", err)
		return
	}
	fmt.Fprintln(w, string(data))
}

// writeText renders one line:
// 2006-01-02T15:04:05.000Z [LEVEL] [component] message key=value ...
func writeText(w io.Writer, entry Entry) {
	line := fmt.Sprintf("%s [%-5s] [%s] %s",
		entry.Timestamp.Format("2006-01-02T15:04:05.000Z"),
		entry.Level, entry.Component, entry.Message)
	for k, v := range entry.Fields {
		line += fmt.Sprintf(" %s=%v", k, v)
	}
	fmt.Fprintln(w, line)
}

// Debug logs a message at DEBUG level.
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log(DEBUG, msg, args...)
}

// Info logs a message at INFO level.
func (l *Logger) Info(msg string, args ...interface{}) {
	l.log(INFO, msg, args...)
}

// Warn logs a message at WARN level.
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log(WARN, msg, args...)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log(ERROR, msg, args...)
}

// ============================================================================
// Request Tracking
// ============================================================================

var requestCounter uint64

// GenerateRequestID returns a unique request ID of the form
// <counter>-<random_hex>.
func GenerateRequestID() string {
	counter := atomic.AddUint64(&requestCounter, 1)
	randomBytes := make([]byte, 4)
	rand.Read(randomBytes)
	return fmt.Sprintf("%d-%s", counter, hex.EncodeToString(randomBytes))
}

// RequestContext carries per-request metadata for access logging.
type RequestContext struct {
	ID         string
	StartTime  time.Time
	RemoteAddr string
	Method     string
	Path       string
}

// NewRequestContext starts tracking one HTTP request.
func NewRequestContext(remoteAddr, method, path string) *RequestContext {
	return &RequestContext{
		ID:         GenerateRequestID(),
		StartTime:  time.Now(),
		RemoteAddr: remoteAddr,
		Method:     method,
		Path:       path,
	}
}

// DurationMs returns the elapsed time since the request started, in
// milliseconds.
func (r *RequestContext) DurationMs() float64 {
	return float64(time.Since(r.StartTime).Microseconds()) / 1000.0
}

// LogComplete writes the access log line for a finished request.
func (r *RequestContext) LogComplete(logger *Logger, status int, args ...interface{}) {
	baseArgs := []interface{}{
		"request_id", r.ID,
		"remote", r.RemoteAddr,
		"method", r.Method,
		"path", r.Path,
		"status", status,
		"duration_ms", fmt.Sprintf("%.2f", r.DurationMs()),
	}
	baseArgs = append(baseArgs, args...)
	if status >= 500 {
		logger.Error("request failed", baseArgs...)
		return
	}
	logger.Info("request completed", baseArgs...)
}
