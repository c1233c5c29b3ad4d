package parser

import (
	"fmt"
)

type TokenKind int

const (
	TokenKindUnknown TokenKind = iota

	TokenKindIdentifier
	TokenKindKeyword
	TokenKindNumber

	TokenKindComma
	TokenKindWhitespace

	TokenKindOpeningParenthesis
	TokenKindClosingParenthesis

	TokenKindOperatorEqual
	TokenKindOperatorNotEqual
	TokenKindOperatorLower
	TokenKindOperatorLowerEqual
	TokenKindOperatorGreater
	TokenKindOperatorGreaterEqual
	TokenKindOperatorPlus
	TokenKindOperatorMinus
	TokenKindOperatorMult
	TokenKindOperatorDiv
)

func (k TokenKind) String() string {
	switch k {
	case TokenKindUnknown:
		return "TokenKindUnknown"
	case TokenKindIdentifier:
		return "TokenKindIdentifier"
	case TokenKindKeyword:
		return "TokenKindKeyword"
	case TokenKindNumber:
		return "TokenKindNumber"
	case TokenKindComma:
		return "TokenKindComma"
	case TokenKindWhitespace:
		return "TokenKindWhitespace"
	case TokenKindOpeningParenthesis:
		return "TokenKindOpeningParenthesis"
	case TokenKindClosingParenthesis:
		return "TokenKindClosingParenthesis"
	case TokenKindOperatorEqual:
		return "TokenKindOperatorEqual"
	case TokenKindOperatorNotEqual:
		return "TokenKindOperatorNotEqual"
	case TokenKindOperatorLower:
		return "TokenKindOperatorLower"
	case TokenKindOperatorLowerEqual:
		return "TokenKindOperatorLowerEqual"
	case TokenKindOperatorGreater:
		return "TokenKindOperatorGreater"
	case TokenKindOperatorGreaterEqual:
		return "TokenKindOperatorGreaterEqual"
	case TokenKindOperatorPlus:
		return "TokenKindOperatorPlus"
	case TokenKindOperatorMinus:
		return "TokenKindOperatorMinus"
	case TokenKindOperatorMult:
		return "TokenKindOperatorMult"
	case TokenKindOperatorDiv:
		return "TokenKindOperatorDiv"
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", k)
}

func (k TokenKind) Lexeme() string {
	switch k {
	case TokenKindUnknown:
		return "UNKNOWN"
	case TokenKindIdentifier:
		return "identifier"
	case TokenKindKeyword:
		return "keyword"
	case TokenKindNumber:
		return "number"
	case TokenKindComma:
		return ","
	case TokenKindWhitespace:
		return "whitespace"
	case TokenKindOpeningParenthesis:
		return "("
	case TokenKindClosingParenthesis:
		return ")"
	case TokenKindOperatorEqual:
		return "="
	case TokenKindOperatorNotEqual:
		return "<>"
	case TokenKindOperatorLower:
		return "<"
	case TokenKindOperatorLowerEqual:
		return "<="
	case TokenKindOperatorGreater:
		return ">"
	case TokenKindOperatorGreaterEqual:
		return ">="
	case TokenKindOperatorPlus:
		return "+"
	case TokenKindOperatorMinus:
		return "-"
	case TokenKindOperatorMult:
		return "*"
	case TokenKindOperatorDiv:
		return "/"
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", k)
}

// Token is an immutable value type. Two tokens are equal iff their kind,
// lexeme and start position are equal, so plain == comparison works.
type Token struct {
	kind          TokenKind
	lexeme        string
	startPosition int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at position %d", t.kind, t.lexeme, t.startPosition)
}
