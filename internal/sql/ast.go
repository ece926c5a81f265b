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
Abstract Syntax Tree for the generic statement tree.

The parser produces these nodes as-is: WHERE clauses stay raw binary
expression trees and literals stay tagged text. All normalization -
AND/OR flattening, operator inversion for reversed comparisons,
literal-to-value conversion - is the translator's job, so anything that
can produce this tree (another parser, a test) gets identical semantics.

AST Node Hierarchy:
===================

	Statement (interface)
	├── CreateTableStmt
	├── SelectStmt
	├── InsertStmt
	├── UpdateStmt
	├── DeleteStmt
	└── DropTableStmt

	Expr (interface)
	├── Ident
	├── Literal
	└── BinaryExpr

The statementNode/exprNode marker methods follow the usual Go AST
pattern (see go/ast): they pin the closed set of node types at compile
time.
*/
package sql

// Statement is a node of the generic statement tree.
type Statement interface {
	statementNode()
}

// Expr is a value or predicate expression node.
type Expr interface {
	exprNode()
}

// Ident is a column reference.
type Ident struct {
	Name string
}

func (Ident) exprNode() {}

// LiteralKind tags a literal expression.
type LiteralKind int

// Literal kinds.
const (
	LiteralNumber LiteralKind = iota // integer or decimal text
	LiteralString                    // quoted string
	LiteralBool                      // TRUE or FALSE
	LiteralNull                      // NULL
)

// Literal is a literal expression. Text holds the raw literal; the
// translator converts it to a storage value.
type Literal struct {
	Kind LiteralKind
	Text string
}

func (Literal) exprNode() {}

// BinaryExpr is a binary operation over two sub-expressions. Op is one
// of AND, OR, =, !=, <, <=, >, >= or LIKE.
type BinaryExpr struct {
	Left  Expr
	Op    string
	Right Expr
}

func (BinaryExpr) exprNode() {}

// ColumnOptionType identifies a column option in a CREATE TABLE statement.
type ColumnOptionType int

// Column option constants.
const (
	OptionPrimaryKey ColumnOptionType = iota
	OptionNotNull
	OptionUnique
	OptionDefault
)

// ColumnOption is one constraint marker on a column definition. Default
// carries its expression in Default; the translator rejects non-literal
// defaults.
type ColumnOption struct {
	Type    ColumnOptionType
	Default Expr
}

// ColumnDef is one column of a CREATE TABLE statement. Type is the raw
// type name as written; the translator resolves it.
type ColumnDef struct {
	Name    string
	Type    string
	Options []ColumnOption
}

// CreateTableStmt represents CREATE TABLE [IF NOT EXISTS].
type CreateTableStmt struct {
	TableName   string
	Columns     []ColumnDef
	IfNotExists bool
}

func (CreateTableStmt) statementNode() {}

// SelectStmt represents a single-table SELECT. Wildcard marks the `*`
// projection, in which case Columns is empty.
type SelectStmt struct {
	TableName string
	Columns   []string
	Wildcard  bool
	Where     Expr
	Limit     int
	HasLimit  bool
}

func (SelectStmt) statementNode() {}

// InsertStmt represents INSERT INTO with one or more value tuples.
type InsertStmt struct {
	TableName string
	Columns   []string
	Values    [][]Expr
}

func (InsertStmt) statementNode() {}

// UpdateAssignment is one SET clause entry, still in raw form.
type UpdateAssignment struct {
	Column string
	Value  Expr
}

// UpdateStmt represents UPDATE ... SET ... [WHERE ...].
type UpdateStmt struct {
	TableName   string
	Assignments []UpdateAssignment
	Where       Expr
}

func (UpdateStmt) statementNode() {}

// DeleteStmt represents DELETE FROM ... [WHERE ...].
type DeleteStmt struct {
	TableName string
	Where     Expr
}

func (DeleteStmt) statementNode() {}

// DropTableStmt represents DROP TABLE [IF EXISTS].
type DropTableStmt struct {
	TableName string
	IfExists  bool
}

func (DropTableStmt) statementNode() {}
