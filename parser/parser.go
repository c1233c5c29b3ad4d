package parser

import (
	"github.com/hauke96/sigolo/v2"
	"ssq/ast"
	"strconv"
)

// Operator precedences, a higher number binds tighter. Chains of operators with the same precedence associate to the
// left.
const (
	precedenceComparison     = 20
	precedenceAdditive       = 30
	precedenceMultiplicative = 40
)

var infixPrecedences = map[TokenKind]int{
	TokenKindOperatorEqual:        precedenceComparison,
	TokenKindOperatorNotEqual:     precedenceComparison,
	TokenKindOperatorLower:        precedenceComparison,
	TokenKindOperatorLowerEqual:   precedenceComparison,
	TokenKindOperatorGreater:      precedenceComparison,
	TokenKindOperatorGreaterEqual: precedenceComparison,
	TokenKindOperatorPlus:         precedenceAdditive,
	TokenKindOperatorMinus:        precedenceAdditive,
	TokenKindOperatorMult:         precedenceMultiplicative,
	TokenKindOperatorDiv:          precedenceMultiplicative,
}

var tokenKindToOperator = map[TokenKind]ast.Operator{
	TokenKindOperatorEqual:        ast.OperatorEqual,
	TokenKindOperatorNotEqual:     ast.OperatorNotEqual,
	TokenKindOperatorLower:        ast.OperatorLower,
	TokenKindOperatorLowerEqual:   ast.OperatorLowerEqual,
	TokenKindOperatorGreater:      ast.OperatorGreater,
	TokenKindOperatorGreaterEqual: ast.OperatorGreaterEqual,
	TokenKindOperatorPlus:         ast.OperatorAdd,
	TokenKindOperatorMinus:        ast.OperatorSub,
	TokenKindOperatorMult:         ast.OperatorMul,
	TokenKindOperatorDiv:          ast.OperatorDiv,
}

// Parser builds one expression AST from a token sequence using precedence climbing. The cursor only ever moves
// forward, there is no backtracking. Instances are single-use and not safe for concurrent use, separate instances are
// fully independent.
type Parser struct {
	tokens []Token
	index  int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
		index:  0,
	}
}

// ParseExpressionString tokenizes and parses the given text as one complete expression. Trailing tokens after the
// expression are an error here, use NewParser directly when the expression is part of a larger statement.
func ParseExpressionString(query string) (ast.Expr, error) {
	tokens, err := Tokenize(query)
	if err != nil {
		return nil, err
	}

	for _, token := range tokens {
		sigolo.Tracef("  kind=%s, pos=%d : %s", token.kind, token.startPosition, token.lexeme)
	}

	parser := NewParser(tokens)
	expression, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	if remaining := parser.Remaining(); len(remaining) > 0 {
		token := remaining[0]
		return nil, ParsingErrorExpectedButFound("end of expression", token.startPosition, token.lexeme, token.kind)
	}

	return expression, nil
}

// currentToken returns the next unconsumed token without consuming it, or nil when the stream has ended. This is the
// peek primitive: deciding whether a token continues the current expression must not move the cursor, otherwise
// tokens belonging to an outer layer (e.g. a closing parenthesis or a clause keyword) would get lost.
func (p *Parser) currentToken() *Token {
	if p.index >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.index]
}

func (p *Parser) moveToNextToken() {
	p.index++
	sigolo.Debugb(1, "Moved to next token: %+v", p.currentToken())
}

// getNextTokenStartPosition returns the input position of the next unconsumed token, or the position right behind the
// last token when the stream has ended. Used for error messages only.
func (p *Parser) getNextTokenStartPosition() int {
	if token := p.currentToken(); token != nil {
		return token.startPosition
	}
	if len(p.tokens) > 0 {
		lastToken := p.tokens[len(p.tokens)-1]
		return lastToken.startPosition + len(lastToken.lexeme)
	}
	return 0
}

// Remaining returns the unconsumed tail of the token sequence. After a successful Parse call the caller can use this
// to detect a trailing, unparsed suffix.
func (p *Parser) Remaining() []Token {
	if p.index >= len(p.tokens) {
		return nil
	}
	return p.tokens[p.index:]
}

// Parse parses exactly one expression starting at the current cursor position and leaves the cursor just past the
// parsed tokens.
func (p *Parser) Parse() (ast.Expr, error) {
	return p.parseExpression(0)
}

func (p *Parser) parseExpression(minPrecedence int) (ast.Expr, error) {
	expression, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		token := p.currentToken()
		if token == nil || !isBindingOperator(token.kind) {
			// Normal end of the expression. Whatever comes next stays in the stream for the caller.
			break
		}

		precedence, err := p.getPrecedence(*token)
		if err != nil {
			return nil, err
		}
		if precedence <= minPrecedence {
			break
		}

		operatorToken := *token
		p.moveToNextToken()

		// Parsing the right side at the operator's own precedence makes equal-precedence chains left-associative.
		rightExpression, err := p.parseExpression(precedence)
		if err != nil {
			return nil, err
		}

		expression = &ast.BinaryExpr{
			Left:     expression,
			Operator: tokenKindToOperator[operatorToken.kind],
			Right:    rightExpression,
		}
	}

	return expression, nil
}

// parsePrefix parses one prefix term, so an expression without any binary operator applied yet: a number literal, an
// identifier, a parenthesized sub-expression or a sign followed by a prefix term.
func (p *Parser) parsePrefix() (ast.Expr, error) {
	token := p.currentToken()
	if token == nil {
		return nil, ParsingTokenStreamEndAtPosition(p.getNextTokenStartPosition(), "start of expression")
	}

	switch token.kind {
	case TokenKindNumber:
		p.moveToNextToken()
		value, err := strconv.ParseInt(token.lexeme, 10, 64)
		if err != nil {
			return nil, ParsingErrorExpectedButFound("integer literal fitting into 64 bits", token.startPosition, token.lexeme, token.kind)
		}
		return &ast.NumberLiteral{Value: value}, nil
	case TokenKindIdentifier:
		p.moveToNextToken()
		return &ast.Ident{Name: token.lexeme}, nil
	case TokenKindOpeningParenthesis:
		p.moveToNextToken()

		// The inner expression starts fresh, any operator binds inside the parentheses.
		expression, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}

		closingToken := p.currentToken()
		if closingToken == nil {
			return nil, ParsingTokenStreamEndAtPosition(p.getNextTokenStartPosition(), "')'")
		}
		if closingToken.kind != TokenKindClosingParenthesis {
			return nil, ParsingErrorExpectedTokenKind(closingToken.startPosition, closingToken.lexeme, closingToken.kind, TokenKindClosingParenthesis)
		}
		p.moveToNextToken()

		return expression, nil
	case TokenKindOperatorPlus, TokenKindOperatorMinus:
		p.moveToNextToken()

		operand, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}

		operator := ast.OperatorAdd
		if token.kind == TokenKindOperatorMinus {
			operator = ast.OperatorSub
		}
		return &ast.UnaryExpr{Operator: operator, Operand: operand}, nil
	}

	return nil, ParsingErrorExpectedButFound("start of expression (number, identifier, '(' or sign)", token.startPosition, token.lexeme, token.kind)
}

func isBindingOperator(kind TokenKind) bool {
	_, ok := infixPrecedences[kind]
	return ok
}

// getPrecedence returns the infix precedence of the given operator token. Calling this for a token that is no binding
// operator is a caller error, the check has to happen before via isBindingOperator.
func (p *Parser) getPrecedence(token Token) (int, error) {
	if precedence, ok := infixPrecedences[token.kind]; ok {
		return precedence, nil
	}
	return 0, ParsingErrorExpectedButFound("binary operator", token.startPosition, token.lexeme, token.kind)
}
