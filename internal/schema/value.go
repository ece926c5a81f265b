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
	"encoding/json"
	"strconv"
	"strings"
	"time"

	rerrors "github.com/kazuma0606/rustydb/internal/errors"
)

/*
Value is the tagged union of storable scalars.

A Value is exactly one of Integer (int64), Float (float64), Text (string),
Boolean, Timestamp (UTC instant) or Null. The variant tag is the DataType
returned by Type(); all comparison and cast logic switches exhaustively on
that tag, so adding a variant forces every switch in this package to be
revisited.

Values are immutable: constructors are the only way to produce one, and
accessors return copies of the payload.
*/
type Value struct {
	typ DataType
	i   int64
	f   float64
	s   string
	b   bool
	t   time.Time
}

// Null is the NULL value. The zero Value is not valid; use Null.
var Null = Value{typ: TypeNull}

// NewInteger creates an INTEGER value.
func NewInteger(v int64) Value {
	return Value{typ: TypeInteger, i: v}
}

// NewFloat creates a FLOAT value.
func NewFloat(v float64) Value {
	return Value{typ: TypeFloat, f: v}
}

// NewText creates a TEXT value.
func NewText(v string) Value {
	return Value{typ: TypeText, s: v}
}

// NewBoolean creates a BOOLEAN value.
func NewBoolean(v bool) Value {
	return Value{typ: TypeBoolean, b: v}
}

// NewTimestamp creates a TIMESTAMP value. The instant is normalized to UTC.
func NewTimestamp(v time.Time) Value {
	return Value{typ: TypeTimestamp, t: v.UTC()}
}

// Type returns the variant tag of the value.
func (v Value) Type() DataType {
	if v.typ == "" {
		return TypeNull
	}
	return v.typ
}

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool {
	return v.Type() == TypeNull
}

// Int returns the integer payload. Valid only for INTEGER values.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload. Valid only for FLOAT values.
func (v Value) Float() float64 { return v.f }

// Text returns the string payload. Valid only for TEXT values.
func (v Value) Text() string { return v.s }

// Bool returns the boolean payload. Valid only for BOOLEAN values.
func (v Value) Bool() bool { return v.b }

// Time returns the timestamp payload. Valid only for TIMESTAMP values.
func (v Value) Time() time.Time { return v.t }

// Equal reports structural equality between two values. Values of
// different variants are never equal; NULL equals only NULL. Timestamps
// compare as instants, so equal instants in different wall-clock
// representations compare equal.
func (v Value) Equal(other Value) bool {
	if v.Type() != other.Type() {
		return false
	}
	switch v.Type() {
	case TypeInteger:
		return v.i == other.i
	case TypeFloat:
		return v.f == other.f
	case TypeText:
		return v.s == other.s
	case TypeBoolean:
		return v.b == other.b
	case TypeTimestamp:
		return v.t.Equal(other.t)
	case TypeNull:
		return true
	default:
		return false
	}
}

// CastTo converts the value to the target data type.
//
// The conversion rules:
//   - NULL casts to anything as NULL.
//   - A cast to the value's own type is the identity.
//   - Integer -> Float/Text/Boolean, Float -> Integer/Text/Boolean and
//     Text -> Integer/Float/Boolean have defined conversions. Numeric to
//     boolean is truthiness (non-zero is true); text parsing is
//     locale-free; boolean text literals are case-insensitive
//     {true,1,yes,y} and {false,0,no,n}.
//   - Every other pairing fails with a type-mismatch error.
func (v Value) CastTo(target DataType) (Value, error) {
	if v.IsNull() {
		return Null, nil
	}
	if v.Type() == target {
		return v, nil
	}

	switch v.Type() {
	case TypeInteger:
		switch target {
		case TypeFloat:
			return NewFloat(float64(v.i)), nil
		case TypeText:
			return NewText(strconv.FormatInt(v.i, 10)), nil
		case TypeBoolean:
			return NewBoolean(v.i != 0), nil
		}

	case TypeFloat:
		switch target {
		case TypeInteger:
			return NewInteger(int64(v.f)), nil
		case TypeText:
			return NewText(strconv.FormatFloat(v.f, 'g', -1, 64)), nil
		case TypeBoolean:
			return NewBoolean(v.f != 0), nil
		}

	case TypeText:
		switch target {
		case TypeInteger:
			i, err := strconv.ParseInt(v.s, 10, 64)
			if err != nil {
				return Null, rerrors.ConversionError(v.s, "INTEGER")
			}
			return NewInteger(i), nil
		case TypeFloat:
			f, err := strconv.ParseFloat(v.s, 64)
			if err != nil {
				return Null, rerrors.ConversionError(v.s, "FLOAT")
			}
			return NewFloat(f), nil
		case TypeBoolean:
			switch strings.ToLower(v.s) {
			case "true", "1", "yes", "y":
				return NewBoolean(true), nil
			case "false", "0", "no", "n":
				return NewBoolean(false), nil
			}
			return Null, rerrors.ConversionError(v.s, "BOOLEAN")
		}
	}

	return Null, rerrors.TypeMismatch(target.String(), v.Type().String())
}

// String renders the value for display. NULL renders as "NULL" and
// timestamps in RFC 3339.
func (v Value) String() string {
	switch v.Type() {
	case TypeInteger:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TypeText:
		return v.s
	case TypeBoolean:
		return strconv.FormatBool(v.b)
	case TypeTimestamp:
		return v.t.Format(time.RFC3339)
	default:
		return "NULL"
	}
}

// MarshalJSON encodes the value for the transport layer: integers and
// floats as JSON numbers, text as strings, booleans as booleans,
// timestamps as RFC 3339 strings, NULL as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Type() {
	case TypeInteger:
		return json.Marshal(v.i)
	case TypeFloat:
		return json.Marshal(v.f)
	case TypeText:
		return json.Marshal(v.s)
	case TypeBoolean:
		return json.Marshal(v.b)
	case TypeTimestamp:
		return json.Marshal(v.t.Format(time.RFC3339))
	default:
		return []byte("null"), nil
	}
}
