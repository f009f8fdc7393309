// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parse builds affine expressions from their textual rendering.
//
// The grammar matches the output of the expr package String methods:
// dimensional identifiers d0, d1, ..., symbolic identifiers s0, s1, ...,
// integer constants, the operators + - * mod floordiv ceildiv, unary
// minus, and parentheses. Multiplicative operators bind tighter than
// additive ones; all operators are left-associative.
//
// Expressions are built through the expr constructors, so a parsed
// expression is always canonical: Parse(ctx, x.String()) returns
// the node x itself.
package parse

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/gx-org/affine/expr"
	"github.com/gx-org/affine/expr/kind"
)

type parser struct {
	ctx *expr.Context
	lex *lexer
	tok token
}

// Parse builds the canonical expression for a source string in a
// context.
func Parse(ctx *expr.Context, src string) (expr.Expr, error) {
	p := &parser{ctx: ctx, lex: &lexer{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	x, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	if p.tok.typ != tokEOF {
		return nil, errors.Errorf("unexpected %q at offset %d", p.tok.text, p.tok.pos)
	}
	return x, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// binaryOp returns the operator kind and binding power of the current
// token, with subtraction reported as an Add of the negated operand.
func (p *parser) binaryOp() (knd kind.Kind, sub bool, power int, ok bool) {
	switch p.tok.typ {
	case tokPlus:
		return kind.Add, false, 1, true
	case tokMinus:
		return kind.Add, true, 1, true
	case tokStar:
		return kind.Mul, false, 2, true
	case tokIdent:
		switch p.tok.text {
		case "mod":
			return kind.Mod, false, 2, true
		case "floordiv":
			return kind.FloorDiv, false, 2, true
		case "ceildiv":
			return kind.CeilDiv, false, 2, true
		}
	}
	return 0, false, 0, false
}

func (p *parser) parseExpr(minPower int) (expr.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		knd, sub, power, ok := p.binaryOp()
		if !ok || power < minPower {
			return lhs, nil
		}
		pos := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr(power + 1)
		if err != nil {
			return nil, err
		}
		if sub {
			lhs, err = expr.Sub(lhs, rhs)
		} else {
			lhs, err = expr.Binary(knd, lhs, rhs)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "cannot build %s at offset %d", knd, pos)
		}
	}
}

func (p *parser) parseUnary() (expr.Expr, error) {
	if p.tok.typ != tokMinus {
		return p.parsePrimary()
	}
	pos := p.tok.pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	// A minus directly in front of a number is part of the literal, so
	// that the most negative int64 constant parses.
	if p.tok.typ == tokNumber {
		return p.parseNumber("-" + p.tok.text)
	}
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	neg, err := expr.Neg(x)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot negate at offset %d", pos)
	}
	return neg, nil
}

func (p *parser) parsePrimary() (expr.Expr, error) {
	switch p.tok.typ {
	case tokNumber:
		return p.parseNumber(p.tok.text)
	case tokIdent:
		return p.parseIdent()
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}
		if p.tok.typ != tokRParen {
			return nil, errors.Errorf("missing closing parenthesis at offset %d", p.tok.pos)
		}
		return x, p.advance()
	case tokEOF:
		return nil, errors.Errorf("unexpected end of expression at offset %d", p.tok.pos)
	}
	return nil, errors.Errorf("unexpected %q at offset %d", p.tok.text, p.tok.pos)
}

func (p *parser) parseNumber(text string) (expr.Expr, error) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, errors.Errorf("invalid constant %q at offset %d", text, p.tok.pos)
	}
	return p.ctx.Constant(value), p.advance()
}

func (p *parser) parseIdent() (expr.Expr, error) {
	text := p.tok.text
	pos := p.tok.pos
	if len(text) < 2 || (text[0] != 'd' && text[0] != 's') {
		return nil, errors.Errorf("unknown identifier %q at offset %d", text, pos)
	}
	position, err := strconv.Atoi(text[1:])
	if err != nil {
		return nil, errors.Errorf("unknown identifier %q at offset %d", text, pos)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if text[0] == 'd' {
		return p.ctx.Dim(position), nil
	}
	return p.ctx.Symbol(position), nil
}
