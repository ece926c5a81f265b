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

package repository

import (
	"context"

	rerrors "github.com/kazuma0606/rustydb/internal/errors"
	"github.com/kazuma0606/rustydb/internal/filter"
	"github.com/kazuma0606/rustydb/internal/schema"
	"github.com/kazuma0606/rustydb/internal/storage"
)

// Memory is the in-memory TableRepository backed by a storage.MemoryEngine.
// The engine is injected at construction; the repository owns no state of
// its own.
type Memory struct {
	engine *storage.MemoryEngine
}

// Compile-time interface check.
var _ TableRepository = (*Memory)(nil)

// NewMemory creates a repository over the given engine.
func NewMemory(engine *storage.MemoryEngine) *Memory {
	return &Memory{engine: engine}
}

// CreateTable implements TableRepository.
func (m *Memory) CreateTable(_ context.Context, table schema.Table) error {
	return translate(m.engine.CreateTable(table, false))
}

// TableExists implements TableRepository.
func (m *Memory) TableExists(_ context.Context, name string) (bool, error) {
	return m.engine.TableExists(name), nil
}

// DropTable implements TableRepository.
func (m *Memory) DropTable(_ context.Context, name string) error {
	return translate(m.engine.DropTable(name, false))
}

// GetTable implements TableRepository.
func (m *Memory) GetTable(_ context.Context, name string) (schema.Table, error) {
	table, err := m.engine.GetTable(name)
	return table, translate(err)
}

// TableNames implements TableRepository.
func (m *Memory) TableNames(_ context.Context) ([]string, error) {
	return m.engine.TableNames(), nil
}

// Insert implements TableRepository.
func (m *Memory) Insert(_ context.Context, name string, row schema.Row) error {
	return translate(m.engine.InsertRow(name, row))
}

// InsertMany implements TableRepository.
func (m *Memory) InsertMany(_ context.Context, name string, rows []schema.Row) error {
	return translate(m.engine.InsertRows(name, rows))
}

// Select implements TableRepository.
func (m *Memory) Select(_ context.Context, name string, columns []string, cond filter.Condition) (schema.ResultSet, error) {
	projected, rows, err := m.engine.SelectRows(name, columns, cond)
	if err != nil {
		return schema.ResultSet{}, translate(err)
	}
	rs := schema.NewResultSet(projected)
	for _, row := range rows {
		rs.AddRow(row)
	}
	return rs, nil
}

// Update implements TableRepository.
func (m *Memory) Update(_ context.Context, name string, assignments []storage.Assignment, cond filter.Condition) (int, error) {
	n, err := m.engine.UpdateRows(name, assignments, cond)
	return n, translate(err)
}

// Delete implements TableRepository.
func (m *Memory) Delete(_ context.Context, name string, cond filter.Condition) (int, error) {
	n, err := m.engine.DeleteRows(name, cond)
	return n, translate(err)
}

// translate maps storage errors onto the repository taxonomy. Lookup
// errors keep their codes; data-category errors (type mismatch, NOT NULL,
// PRIMARY KEY, UNIQUE) become DataError; any other failure becomes an
// internal storage failure.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch rerrors.GetCode(err) {
	case rerrors.ErrCodeTableNotFound,
		rerrors.ErrCodeTableAlreadyExists,
		rerrors.ErrCodeColumnNotFound,
		rerrors.ErrCodeNoColumns,
		rerrors.ErrCodeDuplicateColumn,
		rerrors.ErrCodeMultiplePrimaryKeys:
		return err
	}
	if rerrors.GetCategory(err) == rerrors.CategoryData {
		return rerrors.DataError(err)
	}
	return rerrors.StorageFailure(err)
}
