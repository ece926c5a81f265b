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
Package filter implements the predicate trees rows are matched against.

A filter is a tree of three node kinds:

	Compare    a leaf comparison: column OP literal
	And        true iff every child is true
	Or         true iff any child is true

Evaluation is recursive and short-circuits left to right. The engine is
pure: evaluating a filter reads one row and nothing else, and never
allocates on the match path.

Comparison Semantics:
=====================

  - A row that lacks the column entirely never matches, whatever the
    operator is - including NotEqual.
  - Equal/NotEqual are structural equality on the value union; values of
    different types are never equal.
  - Greater/GreaterOrEqual/Less/LessOrEqual are defined between two
    Integers, two Floats, or two Texts (byte-wise lexicographic). Any
    other pairing evaluates to false rather than erroring.
  - Like requires both operands to be Text. A leading and trailing '%'
    means containment, only a leading '%' a suffix match, only a trailing
    '%' a prefix match, and no '%' exact equality.
*/
package filter

import (
	"strings"

	"github.com/kazuma0606/rustydb/internal/schema"
)

// Operator is a leaf comparison operator.
type Operator string

// Comparison operator constants.
const (
	OpEqual          Operator = "="
	OpNotEqual       Operator = "!="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpLike           Operator = "LIKE"
)

// Invert returns the operator with its comparison direction flipped, for
// normalizing "literal OP column" leaves into "column OP literal" form.
// Equal, NotEqual and Like are direction-free and returned unchanged.
func (op Operator) Invert() Operator {
	switch op {
	case OpGreater:
		return OpLess
	case OpGreaterOrEqual:
		return OpLessOrEqual
	case OpLess:
		return OpGreater
	case OpLessOrEqual:
		return OpGreaterOrEqual
	default:
		return op
	}
}

// Condition is a node of a filter tree.
type Condition interface {
	conditionNode()
}

// Compare is a leaf comparison of a column against a literal value.
type Compare struct {
	Column   string
	Operator Operator
	Value    schema.Value
}

func (*Compare) conditionNode() {}

// And is true iff all of its children are true.
type And struct {
	Conditions []Condition
}

func (*And) conditionNode() {}

// Or is true iff any of its children is true.
type Or struct {
	Conditions []Condition
}

func (*Or) conditionNode() {}

// Eval evaluates the condition against a single row. A nil condition
// matches every row.
func Eval(row schema.Row, cond Condition) bool {
	switch c := cond.(type) {
	case nil:
		return true
	case *Compare:
		return evalCompare(row, c)
	case *And:
		for _, child := range c.Conditions {
			if !Eval(row, child) {
				return false
			}
		}
		return true
	case *Or:
		for _, child := range c.Conditions {
			if Eval(row, child) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func evalCompare(row schema.Row, c *Compare) bool {
	rowValue, ok := row.Get(c.Column)
	if !ok {
		// Absence satisfies no operator.
		return false
	}

	switch c.Operator {
	case OpEqual:
		return rowValue.Equal(c.Value)
	case OpNotEqual:
		return !rowValue.Equal(c.Value)
	case OpGreater:
		cmp, ok := compareOrdered(rowValue, c.Value)
		return ok && cmp > 0
	case OpGreaterOrEqual:
		cmp, ok := compareOrdered(rowValue, c.Value)
		return ok && cmp >= 0
	case OpLess:
		cmp, ok := compareOrdered(rowValue, c.Value)
		return ok && cmp < 0
	case OpLessOrEqual:
		cmp, ok := compareOrdered(rowValue, c.Value)
		return ok && cmp <= 0
	case OpLike:
		return evalLike(rowValue, c.Value)
	default:
		return false
	}
}

// compareOrdered compares two values of the same orderable type. The
// second return is false when the pairing has no defined ordering.
func compareOrdered(a, b schema.Value) (int, bool) {
	if a.Type() != b.Type() {
		return 0, false
	}
	switch a.Type() {
	case schema.TypeInteger:
		av, bv := a.Int(), b.Int()
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	case schema.TypeFloat:
		av, bv := a.Float(), b.Float()
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	case schema.TypeText:
		return strings.Compare(a.Text(), b.Text()), true
	default:
		return 0, false
	}
}

// evalLike implements the %-wildcard subset of LIKE. Both operands must
// be Text; everything else is false.
func evalLike(value, pattern schema.Value) bool {
	if value.Type() != schema.TypeText || pattern.Type() != schema.TypeText {
		return false
	}
	text, pat := value.Text(), pattern.Text()

	leading := strings.HasPrefix(pat, "%")
	trailing := strings.HasSuffix(pat, "%") && len(pat) > 1

	switch {
	case leading && trailing:
		return strings.Contains(text, pat[1:len(pat)-1])
	case leading:
		return strings.HasSuffix(text, pat[1:])
	case trailing:
		return strings.HasPrefix(text, pat[:len(pat)-1])
	default:
		return text == pat
	}
}
