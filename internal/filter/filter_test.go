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

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kazuma0606/rustydb/internal/schema"
)

func sampleRow() schema.Row {
	row := schema.NewRow()
	row.Set("id", schema.NewInteger(5))
	row.Set("name", schema.NewText("alice"))
	row.Set("score", schema.NewFloat(7.5))
	row.Set("active", schema.NewBoolean(true))
	return row
}

func TestEval_NilConditionMatchesAll(t *testing.T) {
	assert.True(t, Eval(sampleRow(), nil))
}

func TestEval_Equality(t *testing.T) {
	row := sampleRow()
	assert.True(t, Eval(row, &Compare{Column: "id", Operator: OpEqual, Value: schema.NewInteger(5)}))
	assert.False(t, Eval(row, &Compare{Column: "id", Operator: OpEqual, Value: schema.NewInteger(6)}))
	assert.True(t, Eval(row, &Compare{Column: "id", Operator: OpNotEqual, Value: schema.NewInteger(6)}))
	assert.True(t, Eval(row, &Compare{Column: "active", Operator: OpEqual, Value: schema.NewBoolean(true)}))
}

func TestEval_Ordering(t *testing.T) {
	row := sampleRow()
	assert.True(t, Eval(row, &Compare{Column: "id", Operator: OpGreater, Value: schema.NewInteger(4)}))
	assert.False(t, Eval(row, &Compare{Column: "id", Operator: OpGreater, Value: schema.NewInteger(5)}))
	assert.True(t, Eval(row, &Compare{Column: "id", Operator: OpGreaterOrEqual, Value: schema.NewInteger(5)}))
	assert.True(t, Eval(row, &Compare{Column: "id", Operator: OpLess, Value: schema.NewInteger(6)}))
	assert.True(t, Eval(row, &Compare{Column: "score", Operator: OpLessOrEqual, Value: schema.NewFloat(7.5)}))
	assert.True(t, Eval(row, &Compare{Column: "name", Operator: OpLess, Value: schema.NewText("bob")}))
}

func TestEval_CrossTypeOrderingIsFalse(t *testing.T) {
	row := sampleRow()
	assert.False(t, Eval(row, &Compare{Column: "id", Operator: OpGreater, Value: schema.NewText("4")}))
	assert.False(t, Eval(row, &Compare{Column: "id", Operator: OpLess, Value: schema.NewFloat(6.0)}))
}

func TestEval_MissingColumnIsFalse(t *testing.T) {
	row := sampleRow()
	// Missing columns fail every comparison, including NotEqual.
	assert.False(t, Eval(row, &Compare{Column: "ghost", Operator: OpEqual, Value: schema.NewInteger(1)}))
	assert.False(t, Eval(row, &Compare{Column: "ghost", Operator: OpNotEqual, Value: schema.NewInteger(1)}))
	assert.False(t, Eval(row, &Compare{Column: "ghost", Operator: OpLike, Value: schema.NewText("%")}))
}

func TestEval_Like(t *testing.T) {
	row := sampleRow()
	like := func(pattern string) bool {
		return Eval(row, &Compare{Column: "name", Operator: OpLike, Value: schema.NewText(pattern)})
	}

	assert.True(t, like("alice"))   // exact
	assert.True(t, like("al%"))     // prefix
	assert.True(t, like("%ice"))    // suffix
	assert.True(t, like("%lic%"))   // substring
	assert.True(t, like("%"))       // matches anything
	assert.False(t, like("bob%"))
	assert.False(t, like("alic"))   // no wildcard means exact match
}

func TestEval_LikeNonTextIsFalse(t *testing.T) {
	row := sampleRow()
	assert.False(t, Eval(row, &Compare{Column: "id", Operator: OpLike, Value: schema.NewText("5%")}))
	assert.False(t, Eval(row, &Compare{Column: "name", Operator: OpLike, Value: schema.NewInteger(1)}))
}

func TestEval_And(t *testing.T) {
	row := sampleRow()
	cond := &And{Conditions: []Condition{
		&Compare{Column: "id", Operator: OpEqual, Value: schema.NewInteger(5)},
		&Compare{Column: "name", Operator: OpEqual, Value: schema.NewText("alice")},
	}}
	assert.True(t, Eval(row, cond))

	cond.Conditions = append(cond.Conditions,
		&Compare{Column: "active", Operator: OpEqual, Value: schema.NewBoolean(false)})
	assert.False(t, Eval(row, cond))
}

func TestEval_Or(t *testing.T) {
	row := sampleRow()
	cond := &Or{Conditions: []Condition{
		&Compare{Column: "id", Operator: OpEqual, Value: schema.NewInteger(99)},
		&Compare{Column: "name", Operator: OpEqual, Value: schema.NewText("alice")},
	}}
	assert.True(t, Eval(row, cond))

	cond = &Or{Conditions: []Condition{
		&Compare{Column: "id", Operator: OpEqual, Value: schema.NewInteger(99)},
		&Compare{Column: "name", Operator: OpEqual, Value: schema.NewText("bob")},
	}}
	assert.False(t, Eval(row, cond))
}

func TestEval_EmptyConnectives(t *testing.T) {
	row := sampleRow()
	assert.True(t, Eval(row, &And{}))
	assert.False(t, Eval(row, &Or{}))
}

func TestEval_NestedConditions(t *testing.T) {
	row := sampleRow()
	// (id = 99 OR name = 'alice') AND score > 5
	cond := &And{Conditions: []Condition{
		&Or{Conditions: []Condition{
			&Compare{Column: "id", Operator: OpEqual, Value: schema.NewInteger(99)},
			&Compare{Column: "name", Operator: OpEqual, Value: schema.NewText("alice")},
		}},
		&Compare{Column: "score", Operator: OpGreater, Value: schema.NewFloat(5)},
	}}
	assert.True(t, Eval(row, cond))
}

func TestOperator_Invert(t *testing.T) {
	assert.Equal(t, OpGreater, OpLess.Invert())
	assert.Equal(t, OpLess, OpGreater.Invert())
	assert.Equal(t, OpGreaterOrEqual, OpLessOrEqual.Invert())
	assert.Equal(t, OpLessOrEqual, OpGreaterOrEqual.Invert())
	assert.Equal(t, OpEqual, OpEqual.Invert())
	assert.Equal(t, OpNotEqual, OpNotEqual.Invert())
	assert.Equal(t, OpLike, OpLike.Invert())
}
