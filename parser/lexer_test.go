package parser

import (
	"github.com/hauke96/sigolo/v2"
	"ssq/util"
	"testing"
)

func TestLexer_currentAndNextChar(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	l := &Lexer{
		input: []rune("012345"),
		index: 0,
	}

	// Act & Assert
	util.AssertEqual(t, '0', l.char())
	util.AssertEqual(t, '1', l.nextChar())

	l.index = 3
	util.AssertEqual(t, '3', l.char())
	util.AssertEqual(t, '4', l.nextChar())

	l.index = 5
	util.AssertEqual(t, '5', l.char())
	util.AssertEqual(t, rune(-1), l.nextChar())

	l.index = 6
	util.AssertEqual(t, rune(-1), l.char())
	util.AssertEqual(t, rune(-1), l.nextChar())
}

func TestLexer_read_whitespaceTokenPerCharacter(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	l := &Lexer{
		input: []rune(" \t\n"),
		index: 0,
	}

	// Act
	tokens, err := l.read()

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 3, len(tokens))
	util.AssertEqual(t, Token{kind: TokenKindWhitespace, lexeme: " ", startPosition: 0}, tokens[0])
	util.AssertEqual(t, Token{kind: TokenKindWhitespace, lexeme: "\t", startPosition: 1}, tokens[1])
	util.AssertEqual(t, Token{kind: TokenKindWhitespace, lexeme: "\n", startPosition: 2}, tokens[2])
}

func TestTokenize_selectOne(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	tokens, err := Tokenize("SELECT 1")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 2, len(tokens))
	util.AssertEqual(t, Token{kind: TokenKindKeyword, lexeme: "SELECT", startPosition: 0}, tokens[0])
	util.AssertEqual(t, Token{kind: TokenKindNumber, lexeme: "1", startPosition: 7}, tokens[1])
}

func TestTokenize_simpleSelect(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	tokens, err := Tokenize("SELECT * FROM customer WHERE id = 1")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 8, len(tokens))
	util.AssertEqual(t, Token{kind: TokenKindKeyword, lexeme: "SELECT", startPosition: 0}, tokens[0])
	util.AssertEqual(t, Token{kind: TokenKindOperatorMult, lexeme: "*", startPosition: 7}, tokens[1])
	util.AssertEqual(t, Token{kind: TokenKindKeyword, lexeme: "FROM", startPosition: 9}, tokens[2])
	util.AssertEqual(t, Token{kind: TokenKindIdentifier, lexeme: "customer", startPosition: 14}, tokens[3])
	util.AssertEqual(t, Token{kind: TokenKindKeyword, lexeme: "WHERE", startPosition: 23}, tokens[4])
	util.AssertEqual(t, Token{kind: TokenKindIdentifier, lexeme: "id", startPosition: 29}, tokens[5])
	util.AssertEqual(t, Token{kind: TokenKindOperatorEqual, lexeme: "=", startPosition: 32}, tokens[6])
	util.AssertEqual(t, Token{kind: TokenKindNumber, lexeme: "1", startPosition: 34}, tokens[7])
}

func TestTokenize_compoundOperators(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	tokens, err := Tokenize("a <= b")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 3, len(tokens))
	util.AssertEqual(t, Token{kind: TokenKindIdentifier, lexeme: "a", startPosition: 0}, tokens[0])
	util.AssertEqual(t, Token{kind: TokenKindOperatorLowerEqual, lexeme: "<=", startPosition: 2}, tokens[1])
	util.AssertEqual(t, Token{kind: TokenKindIdentifier, lexeme: "b", startPosition: 5}, tokens[2])

	// Act
	tokens, err = Tokenize("a <> b")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 3, len(tokens))
	util.AssertEqual(t, Token{kind: TokenKindOperatorNotEqual, lexeme: "<>", startPosition: 2}, tokens[1])

	// Act
	tokens, err = Tokenize("a >= b")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 3, len(tokens))
	util.AssertEqual(t, Token{kind: TokenKindOperatorGreaterEqual, lexeme: ">=", startPosition: 2}, tokens[1])
}

func TestTokenize_loneComparisonAtEndOfInput(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	tokens, err := Tokenize("a <")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 2, len(tokens))
	util.AssertEqual(t, Token{kind: TokenKindOperatorLower, lexeme: "<", startPosition: 2}, tokens[1])

	// Act
	tokens, err = Tokenize("a >")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 2, len(tokens))
	util.AssertEqual(t, Token{kind: TokenKindOperatorGreater, lexeme: ">", startPosition: 2}, tokens[1])
}

func TestTokenize_singleCharTokens(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	tokens, err := Tokenize("+-*/=,()")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 8, len(tokens))
	util.AssertEqual(t, TokenKindOperatorPlus, tokens[0].kind)
	util.AssertEqual(t, TokenKindOperatorMinus, tokens[1].kind)
	util.AssertEqual(t, TokenKindOperatorMult, tokens[2].kind)
	util.AssertEqual(t, TokenKindOperatorDiv, tokens[3].kind)
	util.AssertEqual(t, TokenKindOperatorEqual, tokens[4].kind)
	util.AssertEqual(t, TokenKindComma, tokens[5].kind)
	util.AssertEqual(t, TokenKindOpeningParenthesis, tokens[6].kind)
	util.AssertEqual(t, TokenKindClosingParenthesis, tokens[7].kind)
}

func TestTokenize_whitespaceFullyElided(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	tokens, err := Tokenize("SELECT  1")
	tokensReference, errReference := Tokenize("SELECT 1")

	// Assert
	util.AssertNil(t, err)
	util.AssertNil(t, errReference)
	util.AssertEqual(t, len(tokensReference), len(tokens))
	for i := range tokens {
		util.AssertEqual(t, tokensReference[i].kind, tokens[i].kind)
		util.AssertEqual(t, tokensReference[i].lexeme, tokens[i].lexeme)
	}
}

func TestTokenize_unexpectedCharacter(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	tokens, err := Tokenize("SELECT 1 % 2")

	// Assert
	util.AssertNotNil(t, err)
	util.AssertNil(t, tokens)
	util.AssertError(t, "Tokenize error: Unhandled character '%' at position 9.", err)
}

func TestTokenize_identifierStartRules(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	tokens, err := Tokenize("@id _name a1")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 3, len(tokens))
	util.AssertEqual(t, Token{kind: TokenKindIdentifier, lexeme: "@id", startPosition: 0}, tokens[0])
	util.AssertEqual(t, Token{kind: TokenKindIdentifier, lexeme: "_name", startPosition: 4}, tokens[1])
	util.AssertEqual(t, Token{kind: TokenKindIdentifier, lexeme: "a1", startPosition: 10}, tokens[2])

	// Act
	// The '@' must not continue a lexeme, so this is two identifier tokens.
	tokens, err = Tokenize("a@b")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 2, len(tokens))
	util.AssertEqual(t, Token{kind: TokenKindIdentifier, lexeme: "a", startPosition: 0}, tokens[0])
	util.AssertEqual(t, Token{kind: TokenKindIdentifier, lexeme: "@b", startPosition: 1}, tokens[1])
}

func TestTokenize_keywordsCaseInsensitiveButCasePreserving(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	tokens, err := Tokenize("select From WHERE selection")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 4, len(tokens))
	util.AssertEqual(t, Token{kind: TokenKindKeyword, lexeme: "select", startPosition: 0}, tokens[0])
	util.AssertEqual(t, Token{kind: TokenKindKeyword, lexeme: "From", startPosition: 7}, tokens[1])
	util.AssertEqual(t, Token{kind: TokenKindKeyword, lexeme: "WHERE", startPosition: 12}, tokens[2])
	// "selection" is identifier-shaped but no keyword.
	util.AssertEqual(t, Token{kind: TokenKindIdentifier, lexeme: "selection", startPosition: 18}, tokens[3])
}

func TestTokenize_deterministic(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	query := "SELECT * FROM customer WHERE id <= 100"

	// Act
	tokensFirst, errFirst := Tokenize(query)
	tokensSecond, errSecond := Tokenize(query)

	// Assert
	util.AssertNil(t, errFirst)
	util.AssertNil(t, errSecond)
	util.AssertEqual(t, tokensFirst, tokensSecond)
}
