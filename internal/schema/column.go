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
	"fmt"
	"strings"
)

// ConstraintType identifies a column constraint kind.
type ConstraintType string

// Constraint type constants.
const (
	ConstraintPrimaryKey ConstraintType = "PRIMARY KEY"
	ConstraintUnique     ConstraintType = "UNIQUE"
	ConstraintNotNull    ConstraintType = "NOT NULL"
	ConstraintDefault    ConstraintType = "DEFAULT"
)

// Constraint is a single column constraint. Default carries its literal
// value in Value; the other kinds leave Value empty.
type Constraint struct {
	Type  ConstraintType
	Value string
}

// String renders the constraint in SQL form.
func (c Constraint) String() string {
	if c.Type == ConstraintDefault {
		return fmt.Sprintf("DEFAULT %s", c.Value)
	}
	return string(c.Type)
}

// Column describes a single table column: name, data type and ordered
// constraints. Constraint order is display order only; it carries no
// semantic weight.
type Column struct {
	Name        string
	Type        DataType
	Constraints []Constraint
}

// NewColumn creates a column with no constraints.
func NewColumn(name string, dataType DataType) Column {
	return Column{Name: name, Type: dataType}
}

// PrimaryKey marks the column as the primary key. PRIMARY KEY implies
// NOT NULL, so the NOT NULL constraint is added as well when absent.
func (c Column) PrimaryKey() Column {
	c.Constraints = append(c.Constraints, Constraint{Type: ConstraintPrimaryKey})
	if !c.IsNotNull() {
		c.Constraints = append(c.Constraints, Constraint{Type: ConstraintNotNull})
	}
	return c
}

// NotNull marks the column NOT NULL. Adding it twice is a no-op.
func (c Column) NotNull() Column {
	if !c.IsNotNull() {
		c.Constraints = append(c.Constraints, Constraint{Type: ConstraintNotNull})
	}
	return c
}

// Unique marks the column UNIQUE. Adding it twice is a no-op.
func (c Column) Unique() Column {
	if !c.IsUnique() {
		c.Constraints = append(c.Constraints, Constraint{Type: ConstraintUnique})
	}
	return c
}

// WithDefault sets the column's default literal. A column holds at most
// one default, so any prior DEFAULT constraint is replaced.
func (c Column) WithDefault(value string) Column {
	kept := c.Constraints[:0:0]
	for _, con := range c.Constraints {
		if con.Type != ConstraintDefault {
			kept = append(kept, con)
		}
	}
	c.Constraints = append(kept, Constraint{Type: ConstraintDefault, Value: value})
	return c
}

// IsPrimaryKey reports whether the column is the primary key.
func (c Column) IsPrimaryKey() bool {
	return c.hasConstraint(ConstraintPrimaryKey)
}

// IsNotNull reports whether the column carries a NOT NULL constraint.
func (c Column) IsNotNull() bool {
	return c.hasConstraint(ConstraintNotNull)
}

// IsUnique reports whether the column carries a UNIQUE constraint.
func (c Column) IsUnique() bool {
	return c.hasConstraint(ConstraintUnique)
}

// DefaultValue returns the column's default literal, if one is set.
func (c Column) DefaultValue() (string, bool) {
	for _, con := range c.Constraints {
		if con.Type == ConstraintDefault {
			return con.Value, true
		}
	}
	return "", false
}

func (c Column) hasConstraint(t ConstraintType) bool {
	for _, con := range c.Constraints {
		if con.Type == t {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the column.
func (c Column) Clone() Column {
	out := c
	out.Constraints = append([]Constraint(nil), c.Constraints...)
	return out
}

// ConstraintStrings returns the constraints rendered in SQL form, in
// declaration order.
func (c Column) ConstraintStrings() []string {
	out := make([]string, 0, len(c.Constraints))
	for _, con := range c.Constraints {
		out = append(out, con.String())
	}
	return out
}

// String renders the column as it would appear in a CREATE TABLE statement.
func (c Column) String() string {
	parts := []string{c.Name, c.Type.String()}
	parts = append(parts, c.ConstraintStrings()...)
	return strings.Join(parts, " ")
}
