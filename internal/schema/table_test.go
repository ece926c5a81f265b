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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/kazuma0606/rustydb/internal/errors"
)

func TestColumn_PrimaryKeyImpliesNotNull(t *testing.T) {
	col := NewColumn("id", TypeInteger).PrimaryKey()
	assert.True(t, col.IsPrimaryKey())
	assert.True(t, col.IsNotNull())
}

func TestColumn_ConstraintDeduplication(t *testing.T) {
	col := NewColumn("id", TypeInteger).NotNull().NotNull().Unique().Unique()
	assert.Len(t, col.Constraints, 2)
}

func TestColumn_WithDefaultReplacesPrior(t *testing.T) {
	col := NewColumn("n", TypeInteger).WithDefault("1").WithDefault("2")
	def, ok := col.DefaultValue()
	require.True(t, ok)
	assert.Equal(t, "2", def)

	count := 0
	for _, c := range col.Constraints {
		if c.Type == ConstraintDefault {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestTable_AddColumn(t *testing.T) {
	table := NewTable("users")
	require.NoError(t, table.AddColumn(NewColumn("id", TypeInteger).PrimaryKey()))
	require.NoError(t, table.AddColumn(NewColumn("name", TypeText)))

	assert.Equal(t, []string{"id", "name"}, table.ColumnNames())
	assert.Equal(t, 1, table.ColumnIndex("name"))
	require.NotNil(t, table.PrimaryKey())
	assert.Equal(t, "id", table.PrimaryKey().Name)
}

func TestTable_AddColumn_Duplicate(t *testing.T) {
	table := NewTable("users")
	require.NoError(t, table.AddColumn(NewColumn("id", TypeInteger)))

	err := table.AddColumn(NewColumn("id", TypeText))
	require.Error(t, err)
	assert.Equal(t, rerrors.ErrCodeDuplicateColumn, rerrors.GetCode(err))
}

func TestTable_AddColumn_SecondPrimaryKey(t *testing.T) {
	table := NewTable("users")
	require.NoError(t, table.AddColumn(NewColumn("id", TypeInteger).PrimaryKey()))

	err := table.AddColumn(NewColumn("email", TypeText).PrimaryKey())
	require.Error(t, err)
	assert.Equal(t, rerrors.ErrCodeMultiplePrimaryKeys, rerrors.GetCode(err))
}

func TestTable_Validate_NoColumns(t *testing.T) {
	table := NewTable("empty")
	err := table.Validate()
	require.Error(t, err)
	assert.Equal(t, rerrors.ErrCodeNoColumns, rerrors.GetCode(err))
}

func TestTable_Clone_Independent(t *testing.T) {
	table := NewTable("users")
	require.NoError(t, table.AddColumn(NewColumn("id", TypeInteger).PrimaryKey()))

	clone := table.Clone()
	require.NoError(t, clone.AddColumn(NewColumn("name", TypeText)))

	assert.Len(t, table.Columns, 1)
	assert.Len(t, clone.Columns, 2)
}

func TestRow_Clone_Independent(t *testing.T) {
	row := NewRow()
	row.Set("id", NewInteger(1))

	clone := row.Clone()
	clone.Set("id", NewInteger(2))

	v, ok := row.Get("id")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.Int())
}
