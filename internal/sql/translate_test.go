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

package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/kazuma0606/rustydb/internal/errors"
	"github.com/kazuma0606/rustydb/internal/filter"
	"github.com/kazuma0606/rustydb/internal/schema"
)

func translateOne(t *testing.T, input string) Command {
	t.Helper()
	cmd, err := Translate(parseOne(t, input))
	require.NoError(t, err)
	return cmd
}

func translateErr(t *testing.T, input string) error {
	t.Helper()
	_, err := Translate(parseOne(t, input))
	require.Error(t, err)
	return err
}

func TestTranslate_CreateTable(t *testing.T) {
	cmd := translateOne(t, `CREATE TABLE users (
		id BIGINT PRIMARY KEY,
		name VARCHAR NOT NULL,
		email TEXT UNIQUE,
		score DOUBLE,
		active BOOL DEFAULT TRUE
	)`).(*CreateTableCmd)

	assert.False(t, cmd.IfNotExists)
	table := cmd.Table
	assert.Equal(t, "users", table.Name)
	require.Len(t, table.Columns, 5)

	// Type aliases resolve to canonical types.
	assert.Equal(t, schema.TypeInteger, table.Columns[0].Type)
	assert.Equal(t, schema.TypeText, table.Columns[1].Type)
	assert.Equal(t, schema.TypeText, table.Columns[2].Type)
	assert.Equal(t, schema.TypeFloat, table.Columns[3].Type)
	assert.Equal(t, schema.TypeBoolean, table.Columns[4].Type)

	assert.True(t, table.Columns[0].IsPrimaryKey())
	assert.True(t, table.Columns[1].IsNotNull())
	assert.True(t, table.Columns[2].IsUnique())
}

func TestTranslate_CreateTableIfNotExists(t *testing.T) {
	cmd := translateOne(t, "CREATE TABLE IF NOT EXISTS t (id INT)").(*CreateTableCmd)
	assert.True(t, cmd.IfNotExists)
}

func TestTranslate_CreateTableErrors(t *testing.T) {
	err := translateErr(t, "CREATE TABLE t (id BLOB)")
	assert.Equal(t, rerrors.ErrCodeInvalidDataType, rerrors.GetCode(err))

	err = translateErr(t, "CREATE TABLE t (id INT, id TEXT)")
	assert.Equal(t, rerrors.ErrCodeDuplicateColumn, rerrors.GetCode(err))

	err = translateErr(t, "CREATE TABLE t (a INT PRIMARY KEY, b INT PRIMARY KEY)")
	assert.Equal(t, rerrors.ErrCodeMultiplePrimaryKeys, rerrors.GetCode(err))
}

func TestTranslate_DropTable(t *testing.T) {
	cmd := translateOne(t, "DROP TABLE IF EXISTS users").(*DropTableCmd)
	assert.Equal(t, "users", cmd.TableName)
	assert.True(t, cmd.IfExists)
}

func TestTranslate_Select(t *testing.T) {
	cmd := translateOne(t, "SELECT id, name FROM users LIMIT 5").(*SelectCmd)
	assert.Equal(t, "users", cmd.TableName)
	assert.Equal(t, []string{"id", "name"}, cmd.Columns)
	assert.Nil(t, cmd.Filter)
	assert.True(t, cmd.HasLimit)
	assert.Equal(t, 5, cmd.Limit)

	// Wildcard projection is a nil column list.
	cmd = translateOne(t, "SELECT * FROM users").(*SelectCmd)
	assert.Nil(t, cmd.Columns)
	assert.False(t, cmd.HasLimit)
}

func TestTranslate_SelectComparison(t *testing.T) {
	cmd := translateOne(t, "SELECT * FROM users WHERE age > 21").(*SelectCmd)
	cmp, ok := cmd.Filter.(*filter.Compare)
	require.True(t, ok)
	assert.Equal(t, "age", cmp.Column)
	assert.Equal(t, filter.OpGreater, cmp.Operator)
	assert.Equal(t, schema.NewInteger(21), cmp.Value)
}

func TestTranslate_ReversedComparisonInvertsOperator(t *testing.T) {
	// `5 < age` means the same as `age > 5`.
	cmd := translateOne(t, "SELECT * FROM users WHERE 5 < age").(*SelectCmd)
	cmp := cmd.Filter.(*filter.Compare)
	assert.Equal(t, "age", cmp.Column)
	assert.Equal(t, filter.OpGreater, cmp.Operator)
	assert.Equal(t, schema.NewInteger(5), cmp.Value)

	// Equality is its own inverse.
	cmd = translateOne(t, "SELECT * FROM users WHERE 5 = age").(*SelectCmd)
	cmp = cmd.Filter.(*filter.Compare)
	assert.Equal(t, filter.OpEqual, cmp.Operator)
}

func TestTranslate_AndChainFlattens(t *testing.T) {
	cmd := translateOne(t, "SELECT * FROM t WHERE a = 1 AND b = 2 AND c = 3").(*SelectCmd)
	and, ok := cmd.Filter.(*filter.And)
	require.True(t, ok)
	require.Len(t, and.Conditions, 3)
	for i, col := range []string{"a", "b", "c"} {
		cmp := and.Conditions[i].(*filter.Compare)
		assert.Equal(t, col, cmp.Column)
	}
}

func TestTranslate_OrChainFlattens(t *testing.T) {
	cmd := translateOne(t, "SELECT * FROM t WHERE a = 1 OR b = 2 OR c = 3").(*SelectCmd)
	or, ok := cmd.Filter.(*filter.Or)
	require.True(t, ok)
	assert.Len(t, or.Conditions, 3)
}

func TestTranslate_MixedConnectivesDoNotFlatten(t *testing.T) {
	cmd := translateOne(t, "SELECT * FROM t WHERE a = 1 OR b = 2 AND c = 3").(*SelectCmd)
	or, ok := cmd.Filter.(*filter.Or)
	require.True(t, ok)
	require.Len(t, or.Conditions, 2)

	_, ok = or.Conditions[0].(*filter.Compare)
	assert.True(t, ok)
	and, ok := or.Conditions[1].(*filter.And)
	require.True(t, ok)
	assert.Len(t, and.Conditions, 2)
}

func TestTranslate_LiteralTypes(t *testing.T) {
	cmd := translateOne(t, "INSERT INTO t (a, b, c, d, e) VALUES (7, 2.5, 'x', TRUE, NULL)").(*InsertCmd)
	require.Len(t, cmd.Rows, 1)
	row := cmd.Rows[0]

	v, _ := row.Get("a")
	assert.Equal(t, schema.NewInteger(7), v)
	v, _ = row.Get("b")
	assert.Equal(t, schema.NewFloat(2.5), v)
	v, _ = row.Get("c")
	assert.Equal(t, schema.NewText("x"), v)
	v, _ = row.Get("d")
	assert.Equal(t, schema.NewBoolean(true), v)
	v, _ = row.Get("e")
	assert.True(t, v.IsNull())
}

func TestTranslate_InsertMultipleTuples(t *testing.T) {
	cmd := translateOne(t, "INSERT INTO t (id) VALUES (1), (2), (3)").(*InsertCmd)
	assert.Len(t, cmd.Rows, 3)
}

func TestTranslate_InsertColumnCountMismatch(t *testing.T) {
	err := translateErr(t, "INSERT INTO t (a, b) VALUES (1)")
	assert.Equal(t, rerrors.CategorySyntax, rerrors.GetCategory(err))
	assert.Contains(t, err.Error(), "2 columns but 1 values")
}

func TestTranslate_Update(t *testing.T) {
	cmd := translateOne(t, "UPDATE t SET a = 1, b = 'x' WHERE id = 9").(*UpdateCmd)
	require.Len(t, cmd.Assignments, 2)
	assert.Equal(t, "a", cmd.Assignments[0].Column)
	assert.Equal(t, schema.NewInteger(1), cmd.Assignments[0].Value)
	assert.Equal(t, "b", cmd.Assignments[1].Column)

	cmp := cmd.Filter.(*filter.Compare)
	assert.Equal(t, "id", cmp.Column)
}

func TestTranslate_UpdateRejectsQualifiedColumn(t *testing.T) {
	err := translateErr(t, "UPDATE t SET t.a = 1")
	assert.Equal(t, rerrors.ErrCodeUnsupportedFeature, rerrors.GetCode(err))
}

func TestTranslate_Delete(t *testing.T) {
	cmd := translateOne(t, "DELETE FROM t WHERE id != 4").(*DeleteCmd)
	assert.Equal(t, "t", cmd.TableName)
	cmp := cmd.Filter.(*filter.Compare)
	assert.Equal(t, filter.OpNotEqual, cmp.Operator)

	cmd = translateOne(t, "DELETE FROM t").(*DeleteCmd)
	assert.Nil(t, cmd.Filter)
}

func TestTranslate_UnsupportedComparisons(t *testing.T) {
	err := translateErr(t, "SELECT * FROM t WHERE a = b")
	assert.Equal(t, rerrors.ErrCodeUnsupportedFeature, rerrors.GetCode(err))
	assert.Contains(t, err.Error(), "column-to-column")

	err = translateErr(t, "SELECT * FROM t WHERE 1 = 2")
	assert.Equal(t, rerrors.ErrCodeUnsupportedFeature, rerrors.GetCode(err))
}
