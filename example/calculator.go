// Package example shows the containers in use: a small calculator which
// converts infix expressions to reverse polish notation using the
// shunting-yard algorithm and evaluates the result.
package example

import (
	"errors"
	"fmt"
	"github.com/hneemann/collection"
	"github.com/hneemann/collection/queue"
	"github.com/hneemann/collection/stack"
	"github.com/hneemann/collection/strConcat"
	"math"
	"strconv"
	"unicode"
)

type operator struct {
	priority   int
	rightAssoc bool
	apply      func(a, b float64) (float64, error)
}

var operators = map[string]operator{
	"+": {priority: 1, apply: func(a, b float64) (float64, error) { return a + b, nil }},
	"-": {priority: 1, apply: func(a, b float64) (float64, error) { return a - b, nil }},
	"*": {priority: 2, apply: func(a, b float64) (float64, error) { return a * b, nil }},
	"/": {priority: 2, apply: func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	}},
	"^": {priority: 3, rightAssoc: true, apply: func(a, b float64) (float64, error) { return math.Pow(a, b), nil }},
}

// Tokenize splits the expression into numbers, operators and parentheses
func Tokenize(expression string) (*collection.List[string], error) {
	tokens := collection.NewList[string]()
	number := strConcat.New()
	flushNumber := func() error {
		if number.Size() > 0 {
			return addToken(tokens, number.Flush())
		}
		return nil
	}
	pos := 0
	for _, c := range expression {
		pos++
		switch {
		case unicode.IsDigit(c) || c == '.':
			number.Append(string(c))
			continue
		case unicode.IsSpace(c):
			if err := flushNumber(); err != nil {
				return nil, err
			}
			continue
		case c == '(' || c == ')':
		default:
			if _, ok := operators[string(c)]; !ok {
				return nil, fmt.Errorf("unexpected character '%c' at position %d", c, pos)
			}
		}
		if err := flushNumber(); err != nil {
			return nil, err
		}
		if err := addToken(tokens, string(c)); err != nil {
			return nil, err
		}
	}
	if err := flushNumber(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func addToken(tokens *collection.List[string], tok string) error {
	_, err := tokens.Add(tok)
	return err
}

// ToRPN converts the infix expression to a queue of tokens in
// reverse polish notation.
func ToRPN(expression string) (*queue.Queue[string], error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return nil, err
	}

	out := queue.New[string]()
	ops := stack.New[string]()
	it := tokens.Iterator()
	for it.HasNext() {
		tok, err := it.Next()
		if err != nil {
			return nil, err
		}
		switch tok {
		case "(":
			if err := ops.Push(tok); err != nil {
				return nil, err
			}
		case ")":
			if err := popUntilOpen(ops, out); err != nil {
				return nil, err
			}
		default:
			op, isOp := operators[tok]
			if !isOp {
				if err := out.Enqueue(tok); err != nil {
					return nil, err
				}
				continue
			}
			for !ops.IsEmpty() {
				top, _ := ops.Peek()
				topOp, ok := operators[top]
				if !ok {
					break
				}
				if topOp.priority < op.priority || (topOp.priority == op.priority && op.rightAssoc) {
					break
				}
				_, _ = ops.Pop()
				if err := out.Enqueue(top); err != nil {
					return nil, err
				}
			}
			if err := ops.Push(tok); err != nil {
				return nil, err
			}
		}
	}

	for !ops.IsEmpty() {
		top, _ := ops.Pop()
		if top == "(" {
			return nil, errors.New("missing closing parenthesis")
		}
		if err := out.Enqueue(top); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func popUntilOpen(ops *stack.Stack[string], out *queue.Queue[string]) error {
	for {
		top, err := ops.Pop()
		if err != nil {
			if errors.Is(err, collection.ErrStackUnderflow) {
				return errors.New("missing opening parenthesis")
			}
			return err
		}
		if top == "(" {
			return nil
		}
		if err := out.Enqueue(top); err != nil {
			return err
		}
	}
}

// Evaluate evaluates a queue of tokens in reverse polish notation.
// The queue is not modified.
func Evaluate(rpn *queue.Queue[string]) (float64, error) {
	values := stack.New[float64]()
	it := rpn.Iterator()
	for it.HasNext() {
		tok, err := it.Next()
		if err != nil {
			return 0, err
		}
		if op, ok := operators[tok]; ok {
			b, err := values.Pop()
			if err != nil {
				return 0, fmt.Errorf("missing operand for '%s': %w", tok, err)
			}
			a, err := values.Pop()
			if err != nil {
				return 0, fmt.Errorf("missing operand for '%s': %w", tok, err)
			}
			r, err := op.apply(a, b)
			if err != nil {
				return 0, err
			}
			if err := values.Push(r); err != nil {
				return 0, err
			}
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number '%s'", tok)
		}
		if err := values.Push(v); err != nil {
			return 0, err
		}
	}

	if values.Size() != 1 {
		return 0, fmt.Errorf("invalid expression, %d values remain", values.Size())
	}
	return values.Pop()
}

// Calculate evaluates the given infix expression
func Calculate(expression string) (float64, error) {
	rpn, err := ToRPN(expression)
	if err != nil {
		return 0, err
	}
	return Evaluate(rpn)
}

// FormatRPN returns the tokens separated by spaces
func FormatRPN(rpn *queue.Queue[string]) string {
	c := strConcat.New()
	for tok, err := range rpn.Iter() {
		if err != nil {
			break
		}
		if c.Size() > 0 {
			c.Append(" ")
		}
		c.Append(tok)
	}
	return c.Flush()
}
