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

package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	rerrors "github.com/kazuma0606/rustydb/internal/errors"
	"github.com/kazuma0606/rustydb/internal/schema"
	"github.com/kazuma0606/rustydb/internal/sql"
)

// QueryRequest is the /api/query request body.
type QueryRequest struct {
	SQL string `json:"sql"`
}

// QueryResult is the /api/query response body. Columns and Rows are
// present for SELECT, even when empty; AffectedRows for writes.
// omitzero keeps a non-nil empty rows slice in the output where
// omitempty would drop it.
type QueryResult struct {
	Columns       []string     `json:"columns,omitzero"`
	Rows          []orderedRow `json:"rows,omitzero"`
	AffectedRows  *int         `json:"affected_rows,omitempty"`
	StatementType string       `json:"statement_type"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ColumnInfo describes one column in a table schema response.
type ColumnInfo struct {
	Name        string   `json:"name"`
	DataType    string   `json:"data_type"`
	Constraints []string `json:"constraints"`
}

// TableInfoResponse is the GET /api/tables/{name} response body.
type TableInfoResponse struct {
	Name    string       `json:"name"`
	Columns []ColumnInfo `json:"columns"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleListTables(w http.ResponseWriter, r *http.Request) {
	names, err := s.repo.TableNames(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleGetTable(w http.ResponseWriter, r *http.Request) {
	table, err := s.repo.GetTable(r.Context(), r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := TableInfoResponse{Name: table.Name}
	for _, col := range table.Columns {
		resp.Columns = append(resp.Columns, ColumnInfo{
			Name:        col.Name,
			DataType:    col.Type.String(),
			Constraints: col.ConstraintStrings(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	stmts, err := sql.Parse(req.SQL)
	if err != nil {
		writeError(w, err)
		return
	}

	// Only the first statement executes; the rest are parsed and
	// discarded.
	cmd, err := sql.Translate(stmts[0])
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.execute(r, cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// execute runs one translated command against the repository.
func (s *Server) execute(r *http.Request, cmd sql.Command) (*QueryResult, error) {
	ctx := r.Context()

	switch c := cmd.(type) {
	case *sql.CreateTableCmd:
		err := s.repo.CreateTable(ctx, c.Table)
		if err != nil {
			if c.IfNotExists && rerrors.GetCode(err) == rerrors.ErrCodeTableAlreadyExists {
				err = nil
			}
			if err != nil {
				return nil, err
			}
		}
		zero := 0
		return &QueryResult{StatementType: "CREATE_TABLE", AffectedRows: &zero}, nil

	case *sql.DropTableCmd:
		err := s.repo.DropTable(ctx, c.TableName)
		if err != nil {
			if c.IfExists && rerrors.GetCode(err) == rerrors.ErrCodeTableNotFound {
				err = nil
			}
			if err != nil {
				return nil, err
			}
		}
		return &QueryResult{StatementType: "DROP_TABLE"}, nil

	case *sql.SelectCmd:
		rs, err := s.repo.Select(ctx, c.TableName, c.Columns, c.Filter)
		if err != nil {
			return nil, err
		}
		rows := rs.Rows
		if c.HasLimit && len(rows) > c.Limit {
			rows = rows[:c.Limit]
		}
		result := &QueryResult{
			StatementType: "SELECT",
			Columns:       rs.ColumnNames(),
		}
		result.Rows = make([]orderedRow, 0, len(rows))
		for _, row := range rows {
			result.Rows = append(result.Rows, orderedRow{columns: rs.Columns, row: row})
		}
		return result, nil

	case *sql.InsertCmd:
		if err := s.repo.InsertMany(ctx, c.TableName, c.Rows); err != nil {
			return nil, err
		}
		n := len(c.Rows)
		return &QueryResult{StatementType: "INSERT", AffectedRows: &n}, nil

	case *sql.UpdateCmd:
		n, err := s.repo.Update(ctx, c.TableName, c.Assignments, c.Filter)
		if err != nil {
			return nil, err
		}
		return &QueryResult{StatementType: "UPDATE", AffectedRows: &n}, nil

	case *sql.DeleteCmd:
		n, err := s.repo.Delete(ctx, c.TableName, c.Filter)
		if err != nil {
			return nil, err
		}
		return &QueryResult{StatementType: "DELETE", AffectedRows: &n}, nil
	}

	return nil, rerrors.Internal("unknown command type")
}

// orderedRow serializes a row as a JSON object whose keys follow the
// result's column order. A plain map would serialize keys
// alphabetically.
type orderedRow struct {
	columns []schema.Column
	row     schema.Row
}

func (o orderedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range o.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, ok := o.row.Get(col.Name)
		if !ok {
			buf.WriteString("null")
			continue
		}
		data, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeError maps an error to its HTTP status and writes the error
// response body.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error()})
}

// statusFor picks a status code from the error's code and category.
func statusFor(err error) int {
	switch rerrors.GetCode(err) {
	case rerrors.ErrCodeTableNotFound:
		return http.StatusNotFound
	case rerrors.ErrCodeTableAlreadyExists:
		return http.StatusConflict
	case rerrors.ErrCodeInternal:
		return http.StatusInternalServerError
	}
	if rerrors.IsDataError(err) {
		return http.StatusBadRequest
	}
	switch rerrors.GetCategory(err) {
	case rerrors.CategorySyntax, rerrors.CategoryTranslation, rerrors.CategorySchema:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
