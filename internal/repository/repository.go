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
Package repository defines the capability interface callers use to reach
table storage, decoupling the translator and transport layers from any
one engine. An alternative backend (a persistent one, say) implements
TableRepository and nothing above it changes.

Errors crossing this boundary are translated one-to-one from storage
errors: TableNotFound, TableAlreadyExists and ColumnNotFound pass through
with their codes intact; type and constraint violations surface as
DataError; anything else becomes InternalError.
*/
package repository

import (
	"context"

	"github.com/kazuma0606/rustydb/internal/filter"
	"github.com/kazuma0606/rustydb/internal/schema"
	"github.com/kazuma0606/rustydb/internal/storage"
)

// TableRepository is the storage capability exposed to the layers above
// the engine. Each operation takes a context for caller-side deadline
// plumbing; the in-memory implementation does no I/O and never blocks on
// it.
type TableRepository interface {
	// CreateTable registers a new table schema.
	CreateTable(ctx context.Context, table schema.Table) error

	// TableExists reports whether the named table exists.
	TableExists(ctx context.Context, name string) (bool, error)

	// DropTable removes a table and its rows.
	DropTable(ctx context.Context, name string) error

	// GetTable returns a copy of the named table's schema.
	GetTable(ctx context.Context, name string) (schema.Table, error)

	// TableNames lists all table names.
	TableNames(ctx context.Context) ([]string, error)

	// Insert stores a single row.
	Insert(ctx context.Context, name string, row schema.Row) error

	// InsertMany stores a batch of rows, stopping at the first failure.
	InsertMany(ctx context.Context, name string, rows []schema.Row) error

	// Select returns the rows matching cond, projected onto columns.
	// A nil columns slice selects every column in declaration order.
	Select(ctx context.Context, name string, columns []string, cond filter.Condition) (schema.ResultSet, error)

	// Update overwrites the assigned columns on matching rows and
	// returns the number of rows touched.
	Update(ctx context.Context, name string, assignments []storage.Assignment, cond filter.Condition) (int, error)

	// Delete removes matching rows and returns the number removed.
	Delete(ctx context.Context, name string, cond filter.Condition) (int, error)
}
