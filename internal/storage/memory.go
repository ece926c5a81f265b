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
Package storage implements the RustyDB storage engine.

The engine owns one mapping from table name to table data (schema plus an
ordered, append-preserving row sequence) guarded by a single reader/writer
lock. Reads (select, existence checks, listing) take the shared lock;
writes (create/drop/insert/update/delete) hold the exclusive lock for the
whole operation, including the linear constraint scan, so every public
call is atomic end to end. There are no multi-statement transactions: two
sequential calls can interleave with other callers between them.

Ownership:
==========

The engine is the sole owner of everything behind the lock. Schemas and
rows cross the boundary by value: caller-supplied rows are cloned in on
insert, and reads hand out clones, so no caller ever holds a reference
into engine state.

Validation and Constraints:
===========================

Each inserted row is validated against the schema (NOT NULL, exact data
type equality - no implicit widening), then checked against PRIMARY KEY
and UNIQUE constraints with a linear scan over the stored rows. NULL is
exempt from uniqueness. The scan is O(rows) per constrained column per
insert; no index is maintained, which is an accepted limit at the scale
this engine targets.
*/
package storage

import (
	"sort"
	"sync"

	rerrors "github.com/kazuma0606/rustydb/internal/errors"
	"github.com/kazuma0606/rustydb/internal/filter"
	"github.com/kazuma0606/rustydb/internal/schema"
)

// Assignment names a column and the value an UPDATE writes into it.
type Assignment struct {
	Column string
	Value  schema.Value
}

// tableData pairs a schema with its stored rows.
type tableData struct {
	schema schema.Table
	rows   []schema.Row
}

// MemoryEngine is the in-memory storage engine. The zero value is not
// usable; construct one with NewMemoryEngine and inject it where needed -
// the engine instance, not a hidden global, is the unit of ownership.
type MemoryEngine struct {
	mu     sync.RWMutex
	tables map[string]*tableData
}

// NewMemoryEngine creates an empty storage engine.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{tables: make(map[string]*tableData)}
}

// CreateTable registers a table schema with an empty row sequence. With
// ifNotExists set, creating an existing table is a no-op; otherwise it
// fails with TableAlreadyExists. The schema must pass its own validation
// before it is stored.
func (e *MemoryEngine) CreateTable(table schema.Table, ifNotExists bool) error {
	if err := table.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.tables[table.Name]; ok {
		if ifNotExists {
			return nil
		}
		return rerrors.TableAlreadyExists(table.Name)
	}

	e.tables[table.Name] = &tableData{schema: table.Clone()}
	return nil
}

// DropTable removes a table and all of its rows. With ifExists set,
// dropping a missing table is a no-op; otherwise it fails with
// TableNotFound.
func (e *MemoryEngine) DropTable(name string, ifExists bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.tables[name]; !ok {
		if ifExists {
			return nil
		}
		return rerrors.TableNotFound(name)
	}

	delete(e.tables, name)
	return nil
}

// TableExists reports whether a table with the given name exists.
func (e *MemoryEngine) TableExists(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, ok := e.tables[name]
	return ok
}

// GetTable returns a copy of the named table's schema.
func (e *MemoryEngine) GetTable(name string) (schema.Table, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	td, ok := e.tables[name]
	if !ok {
		return schema.Table{}, rerrors.TableNotFound(name)
	}
	return td.schema.Clone(), nil
}

// TableNames returns the names of all tables, sorted for determinism.
func (e *MemoryEngine) TableNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.tables))
	for name := range e.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InsertRow validates one row against the table's schema and constraints,
// then appends a clone of it.
func (e *MemoryEngine) InsertRow(name string, row schema.Row) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	td, ok := e.tables[name]
	if !ok {
		return rerrors.TableNotFound(name)
	}
	return td.insertRow(row)
}

// InsertRows inserts a batch of rows. The batch aborts at the first row
// that fails validation or a constraint check, but rows appended before
// the failing one remain stored - there is no rollback within a batch.
func (e *MemoryEngine) InsertRows(name string, rows []schema.Row) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	td, ok := e.tables[name]
	if !ok {
		return rerrors.TableNotFound(name)
	}
	for _, row := range rows {
		if err := td.insertRow(row); err != nil {
			return err
		}
	}
	return nil
}

// SelectRows returns the projected schema and every stored row matching
// the filter. A nil columns slice means all columns in declaration order;
// otherwise the projection keeps the requested order and fails with
// ColumnNotFound for any unknown name. A nil filter matches every row.
// Returned rows are clones of engine state.
func (e *MemoryEngine) SelectRows(name string, columns []string, cond filter.Condition) ([]schema.Column, []schema.Row, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	td, ok := e.tables[name]
	if !ok {
		return nil, nil, rerrors.TableNotFound(name)
	}

	var projected []schema.Column
	if columns == nil {
		projected = make([]schema.Column, 0, len(td.schema.Columns))
		for _, col := range td.schema.Columns {
			projected = append(projected, col.Clone())
		}
	} else {
		projected = make([]schema.Column, 0, len(columns))
		for _, colName := range columns {
			col := td.schema.Column(colName)
			if col == nil {
				return nil, nil, rerrors.ColumnNotFound(colName, name)
			}
			projected = append(projected, col.Clone())
		}
	}

	var rows []schema.Row
	for _, row := range td.rows {
		if filter.Eval(row, cond) {
			rows = append(rows, row.Clone())
		}
	}
	return projected, rows, nil
}

// UpdateRows overwrites the assigned columns on every row matching the
// filter (every row when the filter is nil) and returns the count of rows
// touched. Every assignment target must exist in the schema, checked
// before any row is modified, so a ColumnNotFound leaves all rows intact.
//
// Updated values are written as given: type and constraint validation is
// NOT re-run on update. An UPDATE can therefore leave a row inconsistent
// with its schema.
func (e *MemoryEngine) UpdateRows(name string, assignments []Assignment, cond filter.Condition) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	td, ok := e.tables[name]
	if !ok {
		return 0, rerrors.TableNotFound(name)
	}

	for _, a := range assignments {
		if td.schema.ColumnIndex(a.Column) < 0 {
			return 0, rerrors.ColumnNotFound(a.Column, name)
		}
	}

	updated := 0
	for _, row := range td.rows {
		if !filter.Eval(row, cond) {
			continue
		}
		for _, a := range assignments {
			row.Set(a.Column, a.Value)
		}
		updated++
	}
	return updated, nil
}

// DeleteRows removes every row matching the filter (every row when the
// filter is nil) and returns the count removed.
func (e *MemoryEngine) DeleteRows(name string, cond filter.Condition) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	td, ok := e.tables[name]
	if !ok {
		return 0, rerrors.TableNotFound(name)
	}

	if cond == nil {
		deleted := len(td.rows)
		td.rows = nil
		return deleted, nil
	}

	kept := td.rows[:0:0]
	for _, row := range td.rows {
		if !filter.Eval(row, cond) {
			kept = append(kept, row)
		}
	}
	deleted := len(td.rows) - len(kept)
	td.rows = kept
	return deleted, nil
}

// RowCount returns the number of rows stored in the table.
func (e *MemoryEngine) RowCount(name string) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	td, ok := e.tables[name]
	if !ok {
		return 0, rerrors.TableNotFound(name)
	}
	return len(td.rows), nil
}

// insertRow runs row validation and constraint checking, then appends a
// clone of the row. Caller holds the exclusive lock.
func (td *tableData) insertRow(row schema.Row) error {
	if err := td.validateRow(row); err != nil {
		return err
	}
	if err := td.checkConstraints(row); err != nil {
		return err
	}
	td.rows = append(td.rows, row.Clone())
	return nil
}

// validateRow checks the row against the schema: a missing or NULL entry
// in a NOT NULL column fails, and a present non-NULL value must match the
// column's data type exactly.
func (td *tableData) validateRow(row schema.Row) error {
	for _, col := range td.schema.Columns {
		value, ok := row.Get(col.Name)
		if !ok || value.IsNull() {
			if col.IsNotNull() {
				return rerrors.NotNullViolation(col.Name)
			}
			continue
		}
		if value.Type() != col.Type {
			return rerrors.TypeMismatch(col.Type.String(), value.Type().String())
		}
	}
	return nil
}

// checkConstraints enforces PRIMARY KEY and UNIQUE uniqueness for the new
// row with a linear scan over the stored rows. NULL values never violate
// uniqueness, per standard SQL.
func (td *tableData) checkConstraints(row schema.Row) error {
	for _, col := range td.schema.Columns {
		if !col.IsPrimaryKey() && !col.IsUnique() {
			continue
		}
		value, ok := row.Get(col.Name)
		if !ok || value.IsNull() {
			continue
		}
		for _, existing := range td.rows {
			existingValue, ok := existing.Get(col.Name)
			if !ok {
				continue
			}
			if existingValue.Equal(value) {
				if col.IsPrimaryKey() {
					return rerrors.PrimaryKeyViolation()
				}
				return rerrors.UniqueViolation(col.Name)
			}
		}
	}
	return nil
}
