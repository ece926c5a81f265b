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

// Row maps column names to values. A column absent from the map is
// treated identically to one holding NULL for validation purposes.
type Row map[string]Value

// NewRow creates an empty row.
func NewRow() Row {
	return make(Row)
}

// Get returns the value stored for the column and whether one is present.
func (r Row) Get(column string) (Value, bool) {
	v, ok := r[column]
	return v, ok
}

// Set stores a value under the column name.
func (r Row) Set(column string, value Value) {
	r[column] = value
}

// Clone returns an independent copy of the row. The storage engine clones
// caller-supplied rows on insert and engine-owned rows on read, so no map
// is ever shared across the engine boundary.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ResultSet couples a projected column schema with the ordered rows that
// satisfy it. The projection may be a subset or reordering of the source
// table's columns.
type ResultSet struct {
	Columns []Column
	Rows    []Row
}

// NewResultSet creates an empty result set over the given projection.
func NewResultSet(columns []Column) ResultSet {
	return ResultSet{Columns: columns}
}

// AddRow appends a row to the result set.
func (rs *ResultSet) AddRow(row Row) {
	rs.Rows = append(rs.Rows, row)
}

// Len returns the number of rows.
func (rs *ResultSet) Len() int {
	return len(rs.Rows)
}

// IsEmpty reports whether the result set holds no rows.
func (rs *ResultSet) IsEmpty() bool {
	return len(rs.Rows) == 0
}

// ColumnNames returns the projected column names in order.
func (rs *ResultSet) ColumnNames() []string {
	names := make([]string, len(rs.Columns))
	for i, col := range rs.Columns {
		names[i] = col.Name
	}
	return names
}
