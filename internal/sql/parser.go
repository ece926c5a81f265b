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

	rerrors "github.com/kazuma0606/rustydb/internal/errors"
)

// Parser transforms a stream of tokens into the generic statement tree.
// It uses recursive descent with one token of lookahead:
//   - cur: the token being examined
//   - peek: the next token, for decision making
//
// The first lexer error is latched; once set, parsing stops and the
// error is reported from the entry points.
type Parser struct {
	lexer *Lexer
	cur   Token
	peek  Token
	err   error
}

// NewParser creates a Parser for the given Lexer. It reads two tokens
// to populate cur and peek.
func NewParser(lexer *Lexer) *Parser {
	p := &Parser{lexer: lexer}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse tokenizes and parses input into a list of statements.
// Statements are separated by semicolons; a trailing semicolon is
// allowed but not required.
func Parse(input string) ([]Statement, error) {
	return NewParser(NewLexer(input)).ParseStatements()
}

// nextToken advances the parser: cur becomes the previous peek and a
// new token is read into peek.
func (p *Parser) nextToken() {
	p.cur = p.peek
	tok, err := p.lexer.NextToken()
	if err != nil && p.err == nil {
		p.err = err
		tok = Token{Type: TokenEOF}
	}
	p.peek = tok
}

// ParseStatements parses every statement in the input.
func (p *Parser) ParseStatements() ([]Statement, error) {
	var stmts []Statement
	for {
		// Skip empty statements.
		for p.cur.Type == TokenSemicolon {
			p.nextToken()
		}
		if p.err != nil {
			return nil, p.err
		}
		if p.cur.Type == TokenEOF {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.cur.Type != TokenSemicolon && p.cur.Type != TokenEOF {
			return nil, rerrors.UnexpectedToken("';' or end of input", p.cur.Value)
		}
	}
	if len(stmts) == 0 {
		return nil, rerrors.NewSyntaxError("empty statement")
	}
	return stmts, nil
}

// parseStatement dispatches on the leading keyword.
func (p *Parser) parseStatement() (Statement, error) {
	if p.cur.Type == TokenKeyword {
		switch p.cur.Value {
		case "CREATE":
			return p.parseCreateTable()
		case "DROP":
			return p.parseDropTable()
		case "SELECT":
			return p.parseSelect()
		case "INSERT":
			return p.parseInsert()
		case "UPDATE":
			return p.parseUpdate()
		case "DELETE":
			return p.parseDelete()
		}
	}
	return nil, rerrors.UnexpectedToken("CREATE, DROP, SELECT, INSERT, UPDATE or DELETE", p.cur.Value)
}

// parseCreateTable parses a CREATE TABLE statement.
// Syntax: CREATE TABLE [IF NOT EXISTS] <name> ( <column> <type> [options], ... )
//
// Example: CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL)
func (p *Parser) parseCreateTable() (*CreateTableStmt, error) {
	p.nextToken() // skip CREATE
	if err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}

	stmt := &CreateTableStmt{}
	if p.cur.Type == TokenKeyword && p.cur.Value == "IF" {
		p.nextToken()
		if err := p.expectKeyword("NOT"); err != nil {
			return nil, err
		}
		if err := p.expectKeyword("EXISTS"); err != nil {
			return nil, err
		}
		stmt.IfNotExists = true
	}

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	if err := p.expect(TokenLParen, "'('"); err != nil {
		return nil, err
	}
	for {
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		stmt.Columns = append(stmt.Columns, col)
		if p.cur.Type != TokenComma {
			break
		}
		p.nextToken()
	}
	if err := p.expect(TokenRParen, "')'"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseColumnDef parses one column definition: name, type name and an
// optional run of constraint options.
func (p *Parser) parseColumnDef() (ColumnDef, error) {
	var def ColumnDef

	name, err := p.expectIdent()
	if err != nil {
		return def, err
	}
	def.Name = name

	if p.cur.Type != TokenKeyword && p.cur.Type != TokenIdent {
		return def, rerrors.UnexpectedToken("data type", p.cur.Value)
	}
	def.Type = p.cur.Value
	p.nextToken()

	for p.cur.Type == TokenKeyword {
		switch p.cur.Value {
		case "PRIMARY":
			p.nextToken()
			if err := p.expectKeyword("KEY"); err != nil {
				return def, err
			}
			def.Options = append(def.Options, ColumnOption{Type: OptionPrimaryKey})
		case "NOT":
			p.nextToken()
			if err := p.expectKeyword("NULL"); err != nil {
				return def, err
			}
			def.Options = append(def.Options, ColumnOption{Type: OptionNotNull})
		case "UNIQUE":
			p.nextToken()
			def.Options = append(def.Options, ColumnOption{Type: OptionUnique})
		case "DEFAULT":
			p.nextToken()
			expr, err := p.parsePrimary()
			if err != nil {
				return def, err
			}
			def.Options = append(def.Options, ColumnOption{Type: OptionDefault, Default: expr})
		default:
			return def, rerrors.UnexpectedToken("column constraint", p.cur.Value)
		}
	}
	return def, nil
}

// parseDropTable parses a DROP TABLE statement.
// Syntax: DROP TABLE [IF EXISTS] <name>
func (p *Parser) parseDropTable() (*DropTableStmt, error) {
	p.nextToken() // skip DROP
	if err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}

	stmt := &DropTableStmt{}
	if p.cur.Type == TokenKeyword && p.cur.Value == "IF" {
		p.nextToken()
		if err := p.expectKeyword("EXISTS"); err != nil {
			return nil, err
		}
		stmt.IfExists = true
	}

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	stmt.TableName = name
	return stmt, nil
}

// parseSelect parses a single-table SELECT.
// Syntax: SELECT <* | columns> FROM <table> [WHERE <expr>] [LIMIT <n>]
func (p *Parser) parseSelect() (*SelectStmt, error) {
	p.nextToken() // skip SELECT

	stmt := &SelectStmt{}
	if p.cur.Type == TokenStar {
		stmt.Wildcard = true
		p.nextToken()
	} else {
		for {
			name, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, name)
			if p.cur.Type != TokenComma {
				break
			}
			p.nextToken()
		}
	}

	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	if p.cur.Type == TokenKeyword && p.cur.Value == "WHERE" {
		p.nextToken()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Where = expr
	}

	if p.cur.Type == TokenKeyword && p.cur.Value == "LIMIT" {
		p.nextToken()
		if p.cur.Type != TokenNumber {
			return nil, rerrors.UnexpectedToken("row count after LIMIT", p.cur.Value)
		}
		n, err := strconv.Atoi(p.cur.Value)
		if err != nil || n < 0 {
			return nil, rerrors.NewSyntaxError("invalid LIMIT value: " + p.cur.Value)
		}
		stmt.Limit = n
		stmt.HasLimit = true
		p.nextToken()
	}
	return stmt, nil
}

// parseInsert parses an INSERT statement with one or more value tuples.
// Syntax: INSERT INTO <table> ( <columns> ) VALUES ( <values> ), ...
func (p *Parser) parseInsert() (*InsertStmt, error) {
	p.nextToken() // skip INSERT
	if err := p.expectKeyword("INTO"); err != nil {
		return nil, err
	}

	stmt := &InsertStmt{}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	if err := p.expect(TokenLParen, "'('"); err != nil {
		return nil, err
	}
	for {
		col, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		stmt.Columns = append(stmt.Columns, col)
		if p.cur.Type != TokenComma {
			break
		}
		p.nextToken()
	}
	if err := p.expect(TokenRParen, "')'"); err != nil {
		return nil, err
	}

	if err := p.expectKeyword("VALUES"); err != nil {
		return nil, err
	}
	for {
		if err := p.expect(TokenLParen, "'('"); err != nil {
			return nil, err
		}
		var tuple []Expr
		for {
			expr, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			tuple = append(tuple, expr)
			if p.cur.Type != TokenComma {
				break
			}
			p.nextToken()
		}
		if err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		stmt.Values = append(stmt.Values, tuple)
		if p.cur.Type != TokenComma {
			break
		}
		p.nextToken()
	}
	return stmt, nil
}

// parseUpdate parses an UPDATE statement.
// Syntax: UPDATE <table> SET <col> = <value>, ... [WHERE <expr>]
func (p *Parser) parseUpdate() (*UpdateStmt, error) {
	p.nextToken() // skip UPDATE

	stmt := &UpdateStmt{}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	if err := p.expectKeyword("SET"); err != nil {
		return nil, err
	}
	for {
		col, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenEqual, "'='"); err != nil {
			return nil, err
		}
		expr, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		stmt.Assignments = append(stmt.Assignments, UpdateAssignment{Column: col, Value: expr})
		if p.cur.Type != TokenComma {
			break
		}
		p.nextToken()
	}

	if p.cur.Type == TokenKeyword && p.cur.Value == "WHERE" {
		p.nextToken()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Where = expr
	}
	return stmt, nil
}

// parseDelete parses a DELETE statement.
// Syntax: DELETE FROM <table> [WHERE <expr>]
func (p *Parser) parseDelete() (*DeleteStmt, error) {
	p.nextToken() // skip DELETE
	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}

	stmt := &DeleteStmt{}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	if p.cur.Type == TokenKeyword && p.cur.Value == "WHERE" {
		p.nextToken()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Where = expr
	}
	return stmt, nil
}

// ====================================================================
// Expression Parsing
// ====================================================================
//
// Precedence, lowest to highest: OR, AND, comparison. Both connectives
// associate to the left; parentheses override as usual.

func (p *Parser) parseExpr() (Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenKeyword && p.cur.Value == "OR" {
		p.nextToken()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Left: left, Op: "OR", Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenKeyword && p.cur.Value == "AND" {
		p.nextToken()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Left: left, Op: "AND", Right: right}
	}
	return left, nil
}

// parseComparison parses `<primary> <op> <primary>` or a parenthesized
// sub-expression.
func (p *Parser) parseComparison() (Expr, error) {
	if p.cur.Type == TokenLParen {
		p.nextToken()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	var op string
	switch {
	case p.cur.Type == TokenEqual:
		op = "="
	case p.cur.Type == TokenNotEqual:
		op = "!="
	case p.cur.Type == TokenLess:
		op = "<"
	case p.cur.Type == TokenLessEqual:
		op = "<="
	case p.cur.Type == TokenGreater:
		op = ">"
	case p.cur.Type == TokenGreaterEqual:
		op = ">="
	case p.cur.Type == TokenKeyword && p.cur.Value == "LIKE":
		op = "LIKE"
	default:
		return nil, rerrors.UnexpectedToken("comparison operator", p.cur.Value)
	}
	p.nextToken()

	right, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return BinaryExpr{Left: left, Op: op, Right: right}, nil
}

// parsePrimary parses a column reference or a literal.
func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.cur
	switch tok.Type {
	case TokenIdent:
		p.nextToken()
		return Ident{Name: tok.Value}, nil
	case TokenNumber:
		p.nextToken()
		return Literal{Kind: LiteralNumber, Text: tok.Value}, nil
	case TokenString:
		p.nextToken()
		return Literal{Kind: LiteralString, Text: tok.Value}, nil
	case TokenKeyword:
		switch tok.Value {
		case "TRUE", "FALSE":
			p.nextToken()
			return Literal{Kind: LiteralBool, Text: tok.Value}, nil
		case "NULL":
			p.nextToken()
			return Literal{Kind: LiteralNull, Text: "NULL"}, nil
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return nil, rerrors.UnexpectedToken("column name or literal", tok.Value)
}

// ====================================================================
// Token Helpers
// ====================================================================

// expect consumes the current token if it has the wanted type, or
// reports a syntax error naming what was expected.
func (p *Parser) expect(t TokenType, want string) error {
	if p.err != nil {
		return p.err
	}
	if p.cur.Type != t {
		return rerrors.UnexpectedToken(want, p.cur.Value)
	}
	p.nextToken()
	return nil
}

// expectKeyword consumes the current token if it is the given keyword.
func (p *Parser) expectKeyword(word string) error {
	if p.err != nil {
		return p.err
	}
	if p.cur.Type != TokenKeyword || p.cur.Value != word {
		return rerrors.UnexpectedToken(word, p.cur.Value)
	}
	p.nextToken()
	return nil
}

// expectIdent consumes and returns an identifier.
func (p *Parser) expectIdent() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if p.cur.Type != TokenIdent {
		return "", rerrors.UnexpectedToken("identifier", p.cur.Value)
	}
	name := p.cur.Value
	p.nextToken()
	return name, nil
}
