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
Package errors provides the structured error system used throughout RustyDB.

Every fallible operation in the database returns a typed error instead of
panicking; callers branch on error codes, the HTTP layer maps categories to
status codes, and the shell prints the user-facing message.

Error Categories:
  - SyntaxError: SQL tokenization and parsing failures
  - TranslationError: statements the translator cannot map onto the engine
    (unsupported features, non-literal expressions, invalid data types)
  - SchemaError: invalid table definitions (duplicate columns, multiple
    primary keys, empty column lists)
  - StorageError: lookups against state that does not exist, and engine
    internals (table not found, table already exists, column not found)
  - DataError: per-row violations detected at insert time (type mismatch,
    NOT NULL, PRIMARY KEY, UNIQUE)
  - RepositoryError: the category boundary exposed to transports; storage
    and data errors are translated into it one-to-one

Errors never carry control flow across layers silently: a constraint
violation produced by the storage engine surfaces at the API boundary with
its code intact.
*/
package errors

import (
	"fmt"
)

// ErrorCode identifies a specific failure.
type ErrorCode int

const (
	// Syntax errors (1000-1999)
	ErrCodeSyntax          ErrorCode = 1000
	ErrCodeUnexpectedToken ErrorCode = 1001
	ErrCodeUnclosedString  ErrorCode = 1002

	// Translation errors (2000-2999)
	ErrCodeUnsupportedFeature ErrorCode = 2000
	ErrCodeInvalidDataType    ErrorCode = 2001
	ErrCodeInvalidLiteral     ErrorCode = 2002

	// Schema errors (3000-3999)
	ErrCodeDuplicateColumn     ErrorCode = 3000
	ErrCodeMultiplePrimaryKeys ErrorCode = 3001
	ErrCodeNoColumns           ErrorCode = 3002

	// Storage errors (4000-4999)
	ErrCodeTableNotFound      ErrorCode = 4000
	ErrCodeTableAlreadyExists ErrorCode = 4001
	ErrCodeColumnNotFound     ErrorCode = 4002
	ErrCodeInternal           ErrorCode = 4003

	// Data errors (5000-5999)
	ErrCodeTypeMismatch        ErrorCode = 5000
	ErrCodeNotNullViolation    ErrorCode = 5001
	ErrCodePrimaryKeyViolation ErrorCode = 5002
	ErrCodeUniqueViolation     ErrorCode = 5003
	ErrCodeConversion          ErrorCode = 5004

	// Repository errors (6000-6999)
	ErrCodeDataError    ErrorCode = 6000
	ErrCodeStorageError ErrorCode = 6001
)

// Category groups error codes by the layer that produces them.
type Category string

const (
	CategorySyntax      Category = "SYNTAX"
	CategoryTranslation Category = "TRANSLATION"
	CategorySchema      Category = "SCHEMA"
	CategoryStorage     Category = "STORAGE"
	CategoryData        Category = "DATA"
	CategoryRepository  Category = "REPOSITORY"
)

// Error is the structured error type carried across RustyDB layers.
type Error struct {
	Code     ErrorCode
	Category Category
	Message  string
	Detail   string
	Hint     string
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("ERROR %d (%s): %s - %s", e.Code, e.Category, e.Message, e.Detail)
	}
	return fmt.Sprintf("ERROR %d (%s): %s", e.Code, e.Category, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage returns a message suitable for end-user display.
func (e *Error) UserMessage() string {
	msg := fmt.Sprintf("ERROR: %s", e.Message)
	if e.Detail != "" {
		msg += fmt.Sprintf(" (%s)", e.Detail)
	}
	if e.Hint != "" {
		msg += fmt.Sprintf("\nHINT: %s", e.Hint)
	}
	return msg
}

// WithDetail attaches detail text to the error.
func (e *Error) WithDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// WithHint attaches a hint to the error.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// WithCause attaches the underlying cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// ============================================================================
// Syntax Error Constructors
// ============================================================================

// NewSyntaxError creates a generic syntax error.
func NewSyntaxError(message string) *Error {
	return &Error{
		Code:     ErrCodeSyntax,
		Category: CategorySyntax,
		Message:  message,
	}
}

// UnexpectedToken creates an error for an unexpected token.
func UnexpectedToken(expected, got string) *Error {
	return &Error{
		Code:     ErrCodeUnexpectedToken,
		Category: CategorySyntax,
		Message:  fmt.Sprintf("unexpected token: expected %s, got %s", expected, got),
		Hint:     "Check your SQL syntax",
	}
}

// UnclosedString creates an error for an unterminated string literal.
func UnclosedString() *Error {
	return &Error{
		Code:     ErrCodeUnclosedString,
		Category: CategorySyntax,
		Message:  "unterminated string literal",
		Hint:     "Close the string with a single quote",
	}
}

// ============================================================================
// Translation Error Constructors
// ============================================================================

// UnsupportedFeature creates an error for SQL the translator cannot map
// onto the storage engine.
func UnsupportedFeature(feature string) *Error {
	return &Error{
		Code:     ErrCodeUnsupportedFeature,
		Category: CategoryTranslation,
		Message:  fmt.Sprintf("unsupported SQL feature: %s", feature),
	}
}

// InvalidDataType creates an error for an unknown column type name.
func InvalidDataType(name string) *Error {
	return &Error{
		Code:     ErrCodeInvalidDataType,
		Category: CategoryTranslation,
		Message:  fmt.Sprintf("invalid data type: %s", name),
		Hint:     "Supported types: INTEGER, FLOAT, TEXT, BOOLEAN, TIMESTAMP",
	}
}

// InvalidLiteral creates an error for a literal that cannot be converted
// to a storage value.
func InvalidLiteral(literal, target string) *Error {
	return &Error{
		Code:     ErrCodeInvalidLiteral,
		Category: CategoryTranslation,
		Message:  fmt.Sprintf("invalid %s literal: %s", target, literal),
	}
}

// ============================================================================
// Schema Error Constructors
// ============================================================================

// DuplicateColumn creates an error for a column name used twice in a table.
func DuplicateColumn(column string) *Error {
	return &Error{
		Code:     ErrCodeDuplicateColumn,
		Category: CategorySchema,
		Message:  fmt.Sprintf("column '%s' already exists in table", column),
	}
}

// MultiplePrimaryKeys creates an error for a table defining more than one
// primary key column.
func MultiplePrimaryKeys() *Error {
	return &Error{
		Code:     ErrCodeMultiplePrimaryKeys,
		Category: CategorySchema,
		Message:  "multiple primary keys not allowed",
	}
}

// NoColumns creates an error for a table defined without columns.
func NoColumns() *Error {
	return &Error{
		Code:     ErrCodeNoColumns,
		Category: CategorySchema,
		Message:  "table must have at least one column",
	}
}

// ============================================================================
// Storage Error Constructors
// ============================================================================

// TableNotFound creates an error for operations against a missing table.
func TableNotFound(table string) *Error {
	return &Error{
		Code:     ErrCodeTableNotFound,
		Category: CategoryStorage,
		Message:  fmt.Sprintf("table %s not found", table),
	}
}

// TableAlreadyExists creates an error for CREATE TABLE against a taken name.
func TableAlreadyExists(table string) *Error {
	return &Error{
		Code:     ErrCodeTableAlreadyExists,
		Category: CategoryStorage,
		Message:  fmt.Sprintf("table %s already exists", table),
	}
}

// ColumnNotFound creates an error for a column name missing from a table.
func ColumnNotFound(column, table string) *Error {
	return &Error{
		Code:     ErrCodeColumnNotFound,
		Category: CategoryStorage,
		Message:  fmt.Sprintf("column %s not found in table %s", column, table),
	}
}

// Internal creates an error for unexpected engine failures.
func Internal(message string) *Error {
	return &Error{
		Code:     ErrCodeInternal,
		Category: CategoryStorage,
		Message:  fmt.Sprintf("internal storage error: %s", message),
	}
}

// ============================================================================
// Data Error Constructors
// ============================================================================

// TypeMismatch creates an error for a value whose type does not match the
// column it is stored into or cast toward.
func TypeMismatch(expected, actual string) *Error {
	return &Error{
		Code:     ErrCodeTypeMismatch,
		Category: CategoryData,
		Message:  fmt.Sprintf("data type mismatch: expected %s, got %s", expected, actual),
	}
}

// NotNullViolation creates an error for a NULL stored into a NOT NULL column.
func NotNullViolation(column string) *Error {
	return &Error{
		Code:     ErrCodeNotNullViolation,
		Category: CategoryData,
		Message:  fmt.Sprintf("not null constraint violation for column %s", column),
	}
}

// PrimaryKeyViolation creates an error for a duplicate primary key value.
func PrimaryKeyViolation() *Error {
	return &Error{
		Code:     ErrCodePrimaryKeyViolation,
		Category: CategoryData,
		Message:  "primary key constraint violation",
	}
}

// UniqueViolation creates an error for a duplicate value in a UNIQUE column.
func UniqueViolation(column string) *Error {
	return &Error{
		Code:     ErrCodeUniqueViolation,
		Category: CategoryData,
		Message:  fmt.Sprintf("unique constraint violation for column %s", column),
	}
}

// ConversionError creates an error for a failed value cast.
func ConversionError(value, target string) *Error {
	return &Error{
		Code:     ErrCodeConversion,
		Category: CategoryData,
		Message:  fmt.Sprintf("cannot convert %s to %s", value, target),
	}
}

// ============================================================================
// Repository Error Constructors
// ============================================================================

// DataError wraps a constraint or type violation for the repository boundary.
func DataError(cause error) *Error {
	return &Error{
		Code:     ErrCodeDataError,
		Category: CategoryRepository,
		Message:  "data error",
		Detail:   cause.Error(),
		Cause:    cause,
	}
}

// StorageFailure wraps a storage-level failure for the repository boundary.
func StorageFailure(cause error) *Error {
	return &Error{
		Code:     ErrCodeStorageError,
		Category: CategoryRepository,
		Message:  "storage error",
		Detail:   cause.Error(),
		Cause:    cause,
	}
}

// ============================================================================
// Helper Functions
// ============================================================================

// GetCode returns the error code if err is a RustyDB error, or 0 otherwise.
func GetCode(err error) ErrorCode {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return 0
}

// GetCategory returns the category if err is a RustyDB error, or "" otherwise.
func GetCategory(err error) Category {
	if e, ok := err.(*Error); ok {
		return e.Category
	}
	return ""
}

// IsSyntaxError checks whether err is a syntax error.
func IsSyntaxError(err error) bool {
	return GetCategory(err) == CategorySyntax
}

// IsTranslationError checks whether err is a translation error.
func IsTranslationError(err error) bool {
	return GetCategory(err) == CategoryTranslation
}

// IsDataError checks whether err is a data error at either the storage or
// repository boundary.
func IsDataError(err error) bool {
	c := GetCategory(err)
	return c == CategoryData || GetCode(err) == ErrCodeDataError
}

// FormatError formats an error for user display.
func FormatError(err error) string {
	if e, ok := err.(*Error); ok {
		return e.UserMessage()
	}
	return fmt.Sprintf("ERROR: %v", err)
}
