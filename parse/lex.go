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

package parse

import "github.com/pkg/errors"

type tokenType int

const (
	tokEOF tokenType = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokLParen
	tokRParen
)

type token struct {
	typ  tokenType
	text string
	pos  int
}

type lexer struct {
	src string
	pos int
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// next returns the next token in the source.
// Once the end of the source is reached, next keeps returning tokEOF.
func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.pos++
	}
	start := l.pos
	if l.pos >= len(l.src) {
		return token{typ: tokEOF, pos: start}, nil
	}
	c := l.src[l.pos]
	switch c {
	case '+':
		l.pos++
		return token{typ: tokPlus, text: "+", pos: start}, nil
	case '-':
		l.pos++
		return token{typ: tokMinus, text: "-", pos: start}, nil
	case '*':
		l.pos++
		return token{typ: tokStar, text: "*", pos: start}, nil
	case '(':
		l.pos++
		return token{typ: tokLParen, text: "(", pos: start}, nil
	case ')':
		l.pos++
		return token{typ: tokRParen, text: ")", pos: start}, nil
	}
	if isDigit(c) {
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
		return token{typ: tokNumber, text: l.src[start:l.pos], pos: start}, nil
	}
	if isLetter(c) {
		for l.pos < len(l.src) && (isLetter(l.src[l.pos]) || isDigit(l.src[l.pos])) {
			l.pos++
		}
		return token{typ: tokIdent, text: l.src[start:l.pos], pos: start}, nil
	}
	return token{}, errors.Errorf("unexpected character %q at offset %d", c, start)
}
