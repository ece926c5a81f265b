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
Package schema defines the data model shared by every layer of RustyDB:
data types, values, column and table definitions, rows, and result sets.

Supported Data Types:
=====================

  - INTEGER: 64-bit signed integers
  - FLOAT: 64-bit floating-point numbers
  - TEXT: variable-length strings
  - BOOLEAN: true/false values
  - TIMESTAMP: UTC instants
  - NULL: the null type, carried only by the NULL value

Every Value maps to exactly one DataType. NULL is a value in its own
right, not the absence of one: a row may explicitly store NULL in a
column, and validation treats a missing column entry identically to a
stored NULL.

Type names are parsed case-insensitively, with the usual SQL aliases
(INT, BIGINT, REAL, DOUBLE, VARCHAR, CHAR, STRING, BOOL, DATETIME).
*/
package schema

import (
	"strings"

	rerrors "github.com/kazuma0606/rustydb/internal/errors"
)

// DataType identifies the type of a stored value.
type DataType string

// Data type constants.
const (
	TypeInteger   DataType = "INTEGER"
	TypeFloat     DataType = "FLOAT"
	TypeText      DataType = "TEXT"
	TypeBoolean   DataType = "BOOLEAN"
	TypeTimestamp DataType = "TIMESTAMP"
	TypeNull      DataType = "NULL"
)

// dataTypeAliases maps every accepted type name to its canonical DataType.
var dataTypeAliases = map[string]DataType{
	"INTEGER":   TypeInteger,
	"INT":       TypeInteger,
	"BIGINT":    TypeInteger,
	"FLOAT":     TypeFloat,
	"REAL":      TypeFloat,
	"DOUBLE":    TypeFloat,
	"TEXT":      TypeText,
	"VARCHAR":   TypeText,
	"CHAR":      TypeText,
	"STRING":    TypeText,
	"BOOLEAN":   TypeBoolean,
	"BOOL":      TypeBoolean,
	"TIMESTAMP": TypeTimestamp,
	"DATETIME":  TypeTimestamp,
	"NULL":      TypeNull,
}

// ParseDataType resolves a type name (case-insensitive, aliases allowed)
// to its canonical DataType. Unknown names produce an invalid-data-type
// error so a bad CREATE TABLE never reaches the storage engine.
func ParseDataType(name string) (DataType, error) {
	if dt, ok := dataTypeAliases[strings.ToUpper(name)]; ok {
		return dt, nil
	}
	return "", rerrors.InvalidDataType(name)
}

// IsValidDataType reports whether name resolves to a supported data type.
func IsValidDataType(name string) bool {
	_, ok := dataTypeAliases[strings.ToUpper(name)]
	return ok
}

// String returns the canonical SQL name of the data type.
func (d DataType) String() string {
	return string(d)
}
