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
Package sql provides the SQL front end of RustyDB: the lexer and parser
that turn statement text into a generic statement tree, and the
translator that maps one parsed statement onto engine-ready structures.

Lexer Overview:
===============

The Lexer transforms a raw SQL string into a stream of tokens:

	Input:  "SELECT name FROM users WHERE id = 1"

	Output: {Keyword "SELECT"} {Ident "name"} {Keyword "FROM"}
	        {Ident "users"} {Keyword "WHERE"} {Ident "id"}
	        {Equal "="} {Number "1"} {EOF}

Keywords are recognized case-insensitively. Identifiers may contain
letters, digits, underscores and dots; an asterisk is its own token so
the parser can treat the SELECT wildcard explicitly. Numeric literals
cover integers and decimals with an optional leading minus; string
literals use single quotes without escape sequences.
*/
package sql

import (
	"strings"
	"unicode"

	rerrors "github.com/kazuma0606/rustydb/internal/errors"
)

// TokenType classifies a lexical token.
type TokenType int

// Token type constants.
const (
	TokenEOF          TokenType = iota // End of input
	TokenIdent                         // Identifier (table or column name)
	TokenString                        // String literal ('hello')
	TokenNumber                        // Numeric literal (42, 3.14, -7)
	TokenKeyword                       // SQL keyword (SELECT, FROM, ...)
	TokenComma                         // ,
	TokenLParen                        // (
	TokenRParen                        // )
	TokenSemicolon                     // ;
	TokenStar                          // *
	TokenEqual                         // =
	TokenNotEqual                      // != or <>
	TokenLess                          // <
	TokenLessEqual                     // <=
	TokenGreater                       // >
	TokenGreaterEqual                  // >=
)

// Token is a single lexical unit: its type and the literal text.
type Token struct {
	Type  TokenType
	Value string
}

// keywords is the set of reserved words, all compared uppercase.
var keywords = map[string]bool{
	"CREATE": true, "TABLE": true, "DROP": true,
	"SELECT": true, "FROM": true, "WHERE": true, "LIMIT": true,
	"INSERT": true, "INTO": true, "VALUES": true,
	"UPDATE": true, "SET": true, "DELETE": true,
	"AND": true, "OR": true, "LIKE": true, "NOT": true, "NULL": true,
	"PRIMARY": true, "KEY": true, "UNIQUE": true, "DEFAULT": true,
	"IF": true, "EXISTS": true,
	"TRUE": true, "FALSE": true,
	"INTEGER": true, "INT": true, "BIGINT": true,
	"FLOAT": true, "REAL": true, "DOUBLE": true,
	"TEXT": true, "VARCHAR": true, "CHAR": true, "STRING": true,
	"BOOLEAN": true, "BOOL": true,
	"TIMESTAMP": true, "DATETIME": true,
}

// Lexer turns an input string into tokens. Each NextToken call advances
// the position; the lexer is single-pass and holds no lookahead of its
// own (the parser buffers what it needs).
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token, or TokenEOF at end of input. A
// malformed token (unterminated string, stray character) returns a
// syntax error.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF}, nil
	}

	ch := l.input[l.pos]

	// Identifier or keyword.
	if unicode.IsLetter(rune(ch)) || ch == '_' {
		start := l.pos
		for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
			l.pos++
		}
		lit := l.input[start:l.pos]
		if upper := strings.ToUpper(lit); keywords[upper] {
			return Token{Type: TokenKeyword, Value: upper}, nil
		}
		return Token{Type: TokenIdent, Value: lit}, nil
	}

	// Numeric literal, with optional leading minus.
	if unicode.IsDigit(rune(ch)) || (ch == '-' && l.pos+1 < len(l.input) && unicode.IsDigit(rune(l.input[l.pos+1]))) {
		return l.lexNumber(), nil
	}

	// String literal in single quotes.
	if ch == '\'' {
		return l.lexString()
	}

	// Operators and punctuation.
	switch ch {
	case ',':
		l.pos++
		return Token{Type: TokenComma, Value: ","}, nil
	case '(':
		l.pos++
		return Token{Type: TokenLParen, Value: "("}, nil
	case ')':
		l.pos++
		return Token{Type: TokenRParen, Value: ")"}, nil
	case ';':
		l.pos++
		return Token{Type: TokenSemicolon, Value: ";"}, nil
	case '*':
		l.pos++
		return Token{Type: TokenStar, Value: "*"}, nil
	case '=':
		l.pos++
		return Token{Type: TokenEqual, Value: "="}, nil
	case '!':
		if l.pos+1 < len(l.input) && l.input[l.pos+1] == '=' {
			l.pos += 2
			return Token{Type: TokenNotEqual, Value: "!="}, nil
		}
	case '<':
		if l.pos+1 < len(l.input) {
			switch l.input[l.pos+1] {
			case '=':
				l.pos += 2
				return Token{Type: TokenLessEqual, Value: "<="}, nil
			case '>':
				l.pos += 2
				return Token{Type: TokenNotEqual, Value: "<>"}, nil
			}
		}
		l.pos++
		return Token{Type: TokenLess, Value: "<"}, nil
	case '>':
		if l.pos+1 < len(l.input) && l.input[l.pos+1] == '=' {
			l.pos += 2
			return Token{Type: TokenGreaterEqual, Value: ">="}, nil
		}
		l.pos++
		return Token{Type: TokenGreater, Value: ">"}, nil
	}

	return Token{}, rerrors.NewSyntaxError("unexpected character: " + string(ch))
}

// lexNumber consumes an integer or decimal literal.
func (l *Lexer) lexNumber() Token {
	start := l.pos
	if l.input[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.input) && unicode.IsDigit(rune(l.input[l.pos])) {
		l.pos++
	}
	// A decimal point must be followed by at least one digit.
	if l.pos+1 < len(l.input) && l.input[l.pos] == '.' && unicode.IsDigit(rune(l.input[l.pos+1])) {
		l.pos++
		for l.pos < len(l.input) && unicode.IsDigit(rune(l.input[l.pos])) {
			l.pos++
		}
	}
	return Token{Type: TokenNumber, Value: l.input[start:l.pos]}
}

// lexString consumes a single-quoted string literal.
func (l *Lexer) lexString() (Token, error) {
	l.pos++ // opening quote
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '\'' {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return Token{}, rerrors.UnclosedString()
	}
	lit := l.input[start:l.pos]
	l.pos++ // closing quote
	return Token{Type: TokenString, Value: lit}, nil
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
}

func isIdentChar(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || unicode.IsDigit(rune(ch)) || ch == '_' || ch == '.'
}
