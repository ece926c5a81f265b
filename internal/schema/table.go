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

package schema

import (
	rerrors "github.com/kazuma0606/rustydb/internal/errors"
)

// Table is a named, ordered sequence of columns.
//
// Invariants, enforced at construction time so they never reach stored
// state:
//   - column names are unique within the table
//   - at most one column is the primary key
//   - Validate rejects a table with no columns
type Table struct {
	Name    string
	Columns []Column
}

// NewTable creates an empty table definition.
func NewTable(name string) Table {
	return Table{Name: name}
}

// AddColumn appends a column, rejecting duplicate names and second
// primary keys.
func (t *Table) AddColumn(col Column) error {
	if t.Column(col.Name) != nil {
		return rerrors.DuplicateColumn(col.Name)
	}
	if col.IsPrimaryKey() && t.PrimaryKey() != nil {
		return rerrors.MultiplePrimaryKeys()
	}
	t.Columns = append(t.Columns, col)
	return nil
}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// PrimaryKey returns the primary key column, or nil if the table has none.
func (t *Table) PrimaryKey() *Column {
	for i := range t.Columns {
		if t.Columns[i].IsPrimaryKey() {
			return &t.Columns[i]
		}
	}
	return nil
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return i
		}
	}
	return -1
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Validate checks the whole-table invariants that AddColumn cannot see.
func (t *Table) Validate() error {
	if len(t.Columns) == 0 {
		return rerrors.NoColumns()
	}
	return nil
}

// Clone returns a deep copy of the table definition. The storage engine
// hands out clones so callers can never mutate engine-owned schemas.
func (t *Table) Clone() Table {
	out := Table{Name: t.Name, Columns: make([]Column, len(t.Columns))}
	for i, col := range t.Columns {
		out.Columns[i] = col.Clone()
	}
	return out
}
