package calc

import (
	"strconv"
)

// token is one lexical element of an expression line.
type token struct {
	kind tokenKind
	num  float64 // value for tokenNum
	op   byte    // one of + - * / % for tokenOp
	name string  // identifier for tokenFunc and tokenConst
	mem  int     // slot index for tokenMem
	pos  int     // byte offset in the trimmed input
}

func (t token) String() string {
	switch t.kind {
	case tokenNum:
		return "num:" + strconv.FormatFloat(t.num, 'g', -1, 64)
	case tokenOp:
		return "op:" + string(t.op)
	case tokenFunc:
		return "func:" + t.name
	case tokenConst:
		return "const:" + t.name
	case tokenMem:
		return "mem:m" + strconv.Itoa(t.mem)
	}
	return t.kind.String()
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal.
	tokenNum
	// tokenOp is one of the operators + - * / %.
	tokenOp
	// tokenPow is the power marker, ** or ^.
	tokenPow
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
	// tokenFunc is an identifier naming a function.
	tokenFunc
	// tokenMem is a memory slot reference, m0 through m9.
	tokenMem
	// tokenConst is an identifier naming a constant.
	tokenConst
	// tokenLast is _, the last-result reference.
	tokenLast
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "num"
	case tokenOp:
		return "op"
	case tokenPow:
		return "pow"
	case tokenOpen:
		return "open"
	case tokenClose:
		return "close"
	case tokenFunc:
		return "func"
	case tokenMem:
		return "mem"
	case tokenConst:
		return "const"
	case tokenLast:
		return "last"
	}
	return "none"
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

// tokenize scans one expression line into tokens in a single forward pass
// with one character of lookahead. Characters outside the token classes are
// skipped silently. The returned slice always ends with an EOF sentinel.
func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case isDigit(c) || c == '.':
			j := i + 1
			for j < len(src) && (isDigit(src[j]) || src[j] == '.') {
				j++
			}
			n, err := strconv.ParseFloat(src[i:j], 64)
			if err != nil {
				return nil, &NumberError{Text: src[i:j], Col: i}
			}
			toks = append(toks, token{kind: tokenNum, num: n, pos: i})
			i = j
		case c == '+' || c == '-' || c == '/' || c == '%':
			toks = append(toks, token{kind: tokenOp, op: c, pos: i})
			i++
		case c == '*':
			if i+1 < len(src) && src[i+1] == '*' {
				toks = append(toks, token{kind: tokenPow, pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokenOp, op: '*', pos: i})
				i++
			}
		case c == '^':
			toks = append(toks, token{kind: tokenPow, pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokenOpen, pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokenClose, pos: i})
			i++
		case c == '_':
			toks = append(toks, token{kind: tokenLast, pos: i})
			i++
		case isAlpha(c):
			j := i + 1
			for j < len(src) && (isAlpha(src[j]) || isDigit(src[j])) {
				j++
			}
			word := src[i:j]
			switch {
			case isConst(word):
				toks = append(toks, token{kind: tokenConst, name: word, pos: i})
			case len(word) == 2 && word[0] == 'm' && isDigit(word[1]):
				toks = append(toks, token{kind: tokenMem, mem: int(word[1] - '0'), pos: i})
			default:
				toks = append(toks, token{kind: tokenFunc, name: word, pos: i})
			}
			i = j
		default:
			// Anything else is skipped silently.
			i++
		}
	}
	toks = append(toks, token{kind: tokenEOF, pos: len(src)})
	return toks, nil
}
