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
	"strconv"
	"strings"

	rerrors "github.com/kazuma0606/rustydb/internal/errors"
	"github.com/kazuma0606/rustydb/internal/filter"
	"github.com/kazuma0606/rustydb/internal/schema"
	"github.com/kazuma0606/rustydb/internal/storage"
)

/*
Translation from the generic statement tree to engine-ready commands.

The parser stops at syntax; everything the engine cares about is
decided here:

  - Type names resolve to storage data types, schemas are assembled
    and their structural rules (duplicate columns, multiple primary
    keys) checked up front.
  - WHERE trees normalize into filter conditions. Nested AND chains
    and nested OR chains flatten into a single n-ary node, and a
    comparison written with the column on the right (`5 < age`) is
    rewritten with the operator inverted so the filter always sees
    column-operator-value.
  - Literals convert to typed values. A numeric literal containing a
    decimal point becomes a FLOAT, otherwise an INTEGER; everything
    else maps one to one.

Anything outside the supported surface (expressions as values,
column-to-column comparisons, qualified names in SET) is rejected with
a translation error rather than silently misread.
*/

// Command is an engine-ready statement produced by translation.
type Command interface {
	commandNode()
}

// CreateTableCmd creates a table from a fully validated schema.
type CreateTableCmd struct {
	Table       schema.Table
	IfNotExists bool
}

func (CreateTableCmd) commandNode() {}

// DropTableCmd removes a table.
type DropTableCmd struct {
	TableName string
	IfExists  bool
}

func (DropTableCmd) commandNode() {}

// SelectCmd reads rows. Columns is nil for a wildcard projection.
type SelectCmd struct {
	TableName string
	Columns   []string
	Filter    filter.Condition
	Limit     int
	HasLimit  bool
}

func (SelectCmd) commandNode() {}

// InsertCmd appends one or more rows.
type InsertCmd struct {
	TableName string
	Rows      []schema.Row
}

func (InsertCmd) commandNode() {}

// UpdateCmd overwrites columns on matching rows.
type UpdateCmd struct {
	TableName   string
	Assignments []storage.Assignment
	Filter      filter.Condition
}

func (UpdateCmd) commandNode() {}

// DeleteCmd removes matching rows.
type DeleteCmd struct {
	TableName string
	Filter    filter.Condition
}

func (DeleteCmd) commandNode() {}

// Translate converts one parsed statement into its engine command.
func Translate(stmt Statement) (Command, error) {
	switch s := stmt.(type) {
	case *CreateTableStmt:
		return translateCreateTable(s)
	case *DropTableStmt:
		return &DropTableCmd{TableName: s.TableName, IfExists: s.IfExists}, nil
	case *SelectStmt:
		return translateSelect(s)
	case *InsertStmt:
		return translateInsert(s)
	case *UpdateStmt:
		return translateUpdate(s)
	case *DeleteStmt:
		cond, err := translateFilter(s.Where)
		if err != nil {
			return nil, err
		}
		return &DeleteCmd{TableName: s.TableName, Filter: cond}, nil
	}
	return nil, rerrors.UnsupportedFeature("statement type")
}

func translateCreateTable(stmt *CreateTableStmt) (*CreateTableCmd, error) {
	table := schema.NewTable(stmt.TableName)
	for _, def := range stmt.Columns {
		dt, err := schema.ParseDataType(def.Type)
		if err != nil {
			return nil, err
		}
		col := schema.NewColumn(def.Name, dt)
		for _, opt := range def.Options {
			switch opt.Type {
			case OptionPrimaryKey:
				col = col.PrimaryKey()
			case OptionNotNull:
				col = col.NotNull()
			case OptionUnique:
				col = col.Unique()
			case OptionDefault:
				lit, ok := opt.Default.(Literal)
				if !ok {
					return nil, rerrors.UnsupportedFeature("non-literal DEFAULT expression")
				}
				col = col.WithDefault(lit.Text)
			}
		}
		if err := table.AddColumn(col); err != nil {
			return nil, err
		}
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &CreateTableCmd{Table: table, IfNotExists: stmt.IfNotExists}, nil
}

func translateSelect(stmt *SelectStmt) (*SelectCmd, error) {
	cond, err := translateFilter(stmt.Where)
	if err != nil {
		return nil, err
	}
	cmd := &SelectCmd{
		TableName: stmt.TableName,
		Filter:    cond,
		Limit:     stmt.Limit,
		HasLimit:  stmt.HasLimit,
	}
	if !stmt.Wildcard {
		cmd.Columns = stmt.Columns
	}
	return cmd, nil
}

func translateInsert(stmt *InsertStmt) (*InsertCmd, error) {
	cmd := &InsertCmd{TableName: stmt.TableName}
	for _, tuple := range stmt.Values {
		if len(tuple) != len(stmt.Columns) {
			return nil, rerrors.NewSyntaxError(
				"INSERT has " + strconv.Itoa(len(stmt.Columns)) + " columns but " +
					strconv.Itoa(len(tuple)) + " values")
		}
		row := schema.NewRow()
		for i, expr := range tuple {
			val, err := literalValue(expr)
			if err != nil {
				return nil, err
			}
			row.Set(stmt.Columns[i], val)
		}
		cmd.Rows = append(cmd.Rows, row)
	}
	return cmd, nil
}

func translateUpdate(stmt *UpdateStmt) (*UpdateCmd, error) {
	cmd := &UpdateCmd{TableName: stmt.TableName}
	for _, a := range stmt.Assignments {
		// Qualified names would silently target a column that cannot
		// exist, so they are rejected outright.
		if strings.Contains(a.Column, ".") {
			return nil, rerrors.UnsupportedFeature("qualified column name in SET: " + a.Column)
		}
		val, err := literalValue(a.Value)
		if err != nil {
			return nil, err
		}
		cmd.Assignments = append(cmd.Assignments, storage.Assignment{Column: a.Column, Value: val})
	}
	cond, err := translateFilter(stmt.Where)
	if err != nil {
		return nil, err
	}
	cmd.Filter = cond
	return cmd, nil
}

// translateFilter converts a raw WHERE tree into a filter condition,
// flattening nested AND/OR chains into n-ary nodes.
func translateFilter(expr Expr) (filter.Condition, error) {
	if expr == nil {
		return nil, nil
	}
	bin, ok := expr.(BinaryExpr)
	if !ok {
		return nil, rerrors.UnsupportedFeature("bare expression in WHERE clause")
	}

	switch bin.Op {
	case "AND":
		return flattenLogical(bin, "AND")
	case "OR":
		return flattenLogical(bin, "OR")
	}
	return translateCompare(bin)
}

// flattenLogical merges a binary AND/OR with any operand that is
// already the same n-ary node, so `a AND b AND c` produces one And
// with three conditions regardless of how the parser associated it.
func flattenLogical(bin BinaryExpr, op string) (filter.Condition, error) {
	left, err := translateFilter(bin.Left)
	if err != nil {
		return nil, err
	}
	right, err := translateFilter(bin.Right)
	if err != nil {
		return nil, err
	}

	var conds []filter.Condition
	splice := func(c filter.Condition) {
		switch n := c.(type) {
		case *filter.And:
			if op == "AND" {
				conds = append(conds, n.Conditions...)
				return
			}
		case *filter.Or:
			if op == "OR" {
				conds = append(conds, n.Conditions...)
				return
			}
		}
		conds = append(conds, c)
	}
	splice(left)
	splice(right)

	if op == "AND" {
		return &filter.And{Conditions: conds}, nil
	}
	return &filter.Or{Conditions: conds}, nil
}

// translateCompare converts one comparison. The column may appear on
// either side; a reversed comparison inverts the operator so the
// filter always evaluates column-operator-value.
func translateCompare(bin BinaryExpr) (filter.Condition, error) {
	op, err := compareOperator(bin.Op)
	if err != nil {
		return nil, err
	}

	if col, ok := bin.Left.(Ident); ok {
		if _, both := bin.Right.(Ident); both {
			return nil, rerrors.UnsupportedFeature("column-to-column comparison")
		}
		val, err := literalValue(bin.Right)
		if err != nil {
			return nil, err
		}
		return &filter.Compare{Column: col.Name, Operator: op, Value: val}, nil
	}
	if col, ok := bin.Right.(Ident); ok {
		val, err := literalValue(bin.Left)
		if err != nil {
			return nil, err
		}
		return &filter.Compare{Column: col.Name, Operator: op.Invert(), Value: val}, nil
	}
	return nil, rerrors.UnsupportedFeature("comparison without a column reference")
}

func compareOperator(op string) (filter.Operator, error) {
	switch op {
	case "=":
		return filter.OpEqual, nil
	case "!=":
		return filter.OpNotEqual, nil
	case "<":
		return filter.OpLess, nil
	case "<=":
		return filter.OpLessOrEqual, nil
	case ">":
		return filter.OpGreater, nil
	case ">=":
		return filter.OpGreaterOrEqual, nil
	case "LIKE":
		return filter.OpLike, nil
	}
	return "", rerrors.UnsupportedFeature("operator " + op)
}

// literalValue converts a literal expression to a typed value. Only
// literals are accepted in value position.
func literalValue(expr Expr) (schema.Value, error) {
	lit, ok := expr.(Literal)
	if !ok {
		return schema.Null, rerrors.UnsupportedFeature("expression in value position")
	}

	switch lit.Kind {
	case LiteralNull:
		return schema.Null, nil
	case LiteralString:
		return schema.NewText(lit.Text), nil
	case LiteralBool:
		return schema.NewBoolean(lit.Text == "TRUE"), nil
	case LiteralNumber:
		if strings.Contains(lit.Text, ".") {
			f, err := strconv.ParseFloat(lit.Text, 64)
			if err != nil {
				return schema.Null, rerrors.InvalidLiteral(lit.Text, "FLOAT")
			}
			return schema.NewFloat(f), nil
		}
		i, err := strconv.ParseInt(lit.Text, 10, 64)
		if err != nil {
			return schema.Null, rerrors.InvalidLiteral(lit.Text, "INTEGER")
		}
		return schema.NewInteger(i), nil
	}
	return schema.Null, rerrors.InvalidLiteral(lit.Text, "value")
}
