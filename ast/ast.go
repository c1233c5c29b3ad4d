// Package ast defines the expression AST built by the parser. Statement
// nodes (SELECT, UPDATE, ...) belong to the statement grammar layer and are
// not part of this package.
package ast

import (
	"fmt"
)

type Operator int

const (
	OperatorInvalid Operator = iota

	OperatorEqual
	OperatorNotEqual
	OperatorLower
	OperatorLowerEqual
	OperatorGreater
	OperatorGreaterEqual

	OperatorAdd
	OperatorSub
	OperatorMul
	OperatorDiv
)

func (o Operator) String() string {
	switch o {
	case OperatorEqual:
		return "="
	case OperatorNotEqual:
		return "<>"
	case OperatorLower:
		return "<"
	case OperatorLowerEqual:
		return "<="
	case OperatorGreater:
		return ">"
	case OperatorGreaterEqual:
		return ">="
	case OperatorAdd:
		return "+"
	case OperatorSub:
		return "-"
	case OperatorMul:
		return "*"
	case OperatorDiv:
		return "/"
	}
	return fmt.Sprintf("!! INVALID OPERATOR %d !!", o)
}

func (o Operator) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
	// String returns the fully parenthesized form of the expression, which
	// makes operator binding visible, e.g. "(1 + (2 * 3))".
	String() string
}

// NumberLiteral is an integer literal.
type NumberLiteral struct {
	Value int64 `json:"value"`
}

func (e *NumberLiteral) exprNode() {}
func (e *NumberLiteral) String() string {
	return fmt.Sprintf("%d", e.Value)
}

// Ident is a column or other name reference.
type Ident struct {
	Name string `json:"name"`
}

func (e *Ident) exprNode() {}
func (e *Ident) String() string {
	return e.Name
}

// UnaryExpr is a prefix sign applied to an expression.
type UnaryExpr struct {
	Operator Operator `json:"operator"`
	Operand  Expr     `json:"operand"`
}

func (e *UnaryExpr) exprNode() {}
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", e.Operator, e.Operand)
}

// BinaryExpr is a binary operation on two expressions.
type BinaryExpr struct {
	Left     Expr     `json:"left"`
	Operator Operator `json:"operator"`
	Right    Expr     `json:"right"`
}

func (e *BinaryExpr) exprNode() {}
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Operator, e.Right)
}
