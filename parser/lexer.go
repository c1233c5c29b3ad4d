package parser

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
	"ssq/util"
	"strings"
)

// Lexer turns a raw query string into a flat token sequence. Instances are single-use, the index only ever moves
// forward.
type Lexer struct {
	input []rune
	index int // Position in input.
}

var (
	identifierStartChars = []rune{
		'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
		'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
		'_', '@'}
	// The '@' character may start an identifier but does not continue one.
	identifierChars = []rune{
		'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
		'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
		'1', '2', '3', '4', '5', '6', '7', '8', '9', '0',
		'_'}
	numberChars     = []rune{'1', '2', '3', '4', '5', '6', '7', '8', '9', '0'}
	whitespaceChars = []rune{' ', '\t', '\n'}

	// Reserved words of the query language. An identifier-shaped lexeme whose uppercased form is in this list becomes
	// a keyword token, everything else stays an identifier. Extending the language means extending this list.
	keywords = []string{
		"SELECT", "FROM", "WHERE", "LIMIT", "ORDER", "GROUP", "BY",
		"UNION", "ALL", "UPDATE", "DELETE", "IN", "NOT", "NULL", "SET",
	}
)

// Tokenize scans the whole query and returns its tokens in input order. Whitespace tokens are produced during
// scanning but filtered out before returning, so they never reach the parser. On the first unhandled character a
// TokenizeUnexpectedCharError is returned and no partial token sequence.
func Tokenize(query string) ([]Token, error) {
	lexer := Lexer{
		input: []rune(query),
		index: 0,
	}

	allTokens, err := lexer.read()
	if err != nil {
		return nil, err
	}

	// Filtering happens as a post pass over the complete sequence, the order of the remaining tokens is untouched.
	var tokens []Token
	for _, token := range allTokens {
		if token.kind != TokenKindWhitespace {
			tokens = append(tokens, token)
		}
	}

	sigolo.Tracef("Found %d token (%d including whitespace)", len(tokens), len(allTokens))
	return tokens, nil
}

// char returns the rune at the current location or the rune '-1' if there is no next char.
func (l *Lexer) char() rune {
	if l.index >= len(l.input) {
		return -1
	}
	return l.input[l.index]
}

// nextChar returns the next rune, so the one after the rune char() returns, or the rune '-1' if there is no next char.
func (l *Lexer) nextChar() rune {
	if l.index+1 >= len(l.input) {
		return -1
	}
	return l.input[l.index+1]
}

func (l *Lexer) read() ([]Token, error) {
	var tokens []Token
	for l.index < len(l.input) {
		token, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		l.tracef("Found token kind=%s, pos=%d, lexeme=%q", token.kind, token.startPosition, token.lexeme)
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func (l *Lexer) nextToken() (Token, error) {
	/*
		Approach:

		Look at the current character l.char() and create the one token starting there. Each token creation has to
		take care of the index, so that we don't end up in an endless loop because the index wasn't incremented.
	*/

	char := l.char()
	l.tracef("Process next char")

	// Whitespace. One token per character, runs are not merged. The tokens are filtered out later anyway.
	if util.Contains(whitespaceChars, char) {
		return l.currentSingleCharToken(TokenKindWhitespace), nil
	}

	// Keywords and identifier (i.e. token consisting of multi-char words)
	if util.Contains(identifierStartChars, char) {
		return l.currentIdentifierOrKeyword(), nil
	}

	// Numbers
	if util.Contains(numberChars, char) {
		return l.currentNumber(), nil
	}

	// Single-char token
	switch char {
	case ',':
		return l.currentSingleCharToken(TokenKindComma), nil
	case '(':
		return l.currentSingleCharToken(TokenKindOpeningParenthesis), nil
	case ')':
		return l.currentSingleCharToken(TokenKindClosingParenthesis), nil
	case '+':
		return l.currentSingleCharToken(TokenKindOperatorPlus), nil
	case '-':
		return l.currentSingleCharToken(TokenKindOperatorMinus), nil
	case '*':
		return l.currentSingleCharToken(TokenKindOperatorMult), nil
	case '/':
		return l.currentSingleCharToken(TokenKindOperatorDiv), nil
	case '=':
		return l.currentSingleCharToken(TokenKindOperatorEqual), nil
	}

	// Operators needing one char of lookahead. The second char is only consumed when it forms a valid compound, a
	// lone '<' or '>' (also at the end of the input) is a valid token on its own.
	switch char {
	case '<':
		if l.nextChar() == '=' {
			return l.currentMultiCharToken(TokenKindOperatorLowerEqual, 2), nil
		}
		if l.nextChar() == '>' {
			return l.currentMultiCharToken(TokenKindOperatorNotEqual, 2), nil
		}
		return l.currentSingleCharToken(TokenKindOperatorLower), nil
	case '>':
		if l.nextChar() == '=' {
			return l.currentMultiCharToken(TokenKindOperatorGreaterEqual, 2), nil
		}
		return l.currentSingleCharToken(TokenKindOperatorGreater), nil
	}

	return Token{}, TokenizeErrorUnexpectedChar(char, l.index)
}

func (l *Lexer) currentSingleCharToken(tokenKind TokenKind) Token {
	token := Token{
		kind:          tokenKind,
		lexeme:        string(l.char()),
		startPosition: l.index,
	}
	l.index++
	return token
}

func (l *Lexer) currentMultiCharToken(tokenKind TokenKind, chars int) Token {
	token := Token{
		kind:          tokenKind,
		lexeme:        string(l.input[l.index : l.index+chars]),
		startPosition: l.index,
	}
	l.index += chars
	return token
}

// currentIdentifierOrKeyword returns the identifier or keyword token starting at the current index. The lexeme keeps
// its original casing, only the keyword check is case-insensitive.
func (l *Lexer) currentIdentifierOrKeyword() Token {
	startIndex := l.index

	// The start char has looser rules than the following ones (it may be '@' but no digit), so it's consumed
	// unconditionally.
	lexeme := string(l.char())
	l.index++

	for ; l.index < len(l.input) && util.Contains(identifierChars, l.char()); l.index++ {
		lexeme += string(l.char())
	}

	kind := TokenKindIdentifier
	if util.Contains(keywords, strings.ToUpper(lexeme)) {
		kind = TokenKindKeyword
	}

	return Token{
		kind:          kind,
		lexeme:        lexeme,
		startPosition: startIndex,
	}
}

// currentNumber returns the integer literal token starting at the current index. No sign, no decimal point, no
// exponent.
func (l *Lexer) currentNumber() Token {
	lexeme := ""
	startIndex := l.index

	for ; l.index < len(l.input) && util.Contains(numberChars, l.char()); l.index++ {
		lexeme += string(l.char())
	}

	return Token{
		kind:          TokenKindNumber,
		lexeme:        lexeme,
		startPosition: startIndex,
	}
}

func (l *Lexer) tracef(format string, args ...any) {
	formattedMessage := format
	if args != nil && len(args) > 0 {
		formattedMessage = fmt.Sprintf(format, args...)
	}
	sigolo.Traceb(1, "[%d, %q] %s", l.index, l.char(), formattedMessage)
}
