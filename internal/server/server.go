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
Package server implements the RustyDB HTTP API.

Server Architecture Overview:
=============================

The server is a thin JSON-over-HTTP facade in front of the table
repository. Each request is parsed, translated and executed against the
repository; the net/http runtime handles one goroutine per request and
the repository guards all shared state, so handlers hold no locks of
their own.

Routes:
=======

	GET  /health              Health check, returns 200 with no body
	GET  /api/tables          List table names
	GET  /api/tables/{name}   Table schema (columns and constraints)
	POST /api/query           Execute a SQL statement

Query Execution:
================

The /api/query body is {"sql": "..."}. The SQL text may contain several
semicolon-separated statements but only the first is executed; the rest
are parsed and discarded. The response always carries statement_type,
plus columns/rows for SELECT or affected_rows for writes.

Error Mapping:
==============

Errors translate to HTTP status codes by their category and code:

	syntax or translation error  400
	table not found              404
	table already exists         409
	constraint or type error     400
	anything else                500

Every error response body is {"error": "<message>"}.
*/
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/kazuma0606/rustydb/internal/logging"
	"github.com/kazuma0606/rustydb/internal/repository"
)

// Package-level logger for the server component.
var log = logging.NewLogger("server")

// Server serves the RustyDB HTTP API.
type Server struct {
	addr string
	repo repository.TableRepository
	http *http.Server
}

// New creates a Server listening on addr, backed by repo.
func New(addr string, repo repository.TableRepository) *Server {
	s := &Server{
		addr: addr,
		repo: repo,
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// routes builds the request multiplexer with access logging applied to
// every route.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/tables", s.handleListTables)
	mux.HandleFunc("GET /api/tables/{name}", s.handleGetTable)
	mux.HandleFunc("POST /api/query", s.handleQuery)
	return s.logRequests(mux)
}

// Start begins serving and blocks until the listener stops.
// http.ErrServerClosed is returned after a graceful Shutdown and is
// not an error.
func (s *Server) Start() error {
	log.Info("listening", "addr", s.addr)
	return s.http.ListenAndServe()
}

// Shutdown stops accepting new connections and waits for in-flight
// requests to finish, up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("shutting down")
	return s.http.Shutdown(ctx)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// statusRecorder captures the response status for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests wraps h with per-request access logging. Each request
// gets a unique ID so its log lines can be correlated.
func (s *Server) logRequests(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := logging.NewRequestContext(r.RemoteAddr, r.Method, r.URL.Path)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rec, r)
		rc.LogComplete(log, rec.status)
	})
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", "error", err)
	}
}
