package calc

import "math"

// expression     := addition
// addition       := multiplication (('+'|'-') multiplication)*
// multiplication := power (('*'|'/'|'%') power)*
// power          := unary ('**' power)?        right-associative
// unary          := ('+'|'-') power | factor   so -2**2 = -(2**2)
// factor         := NUMBER | '(' addition ')' | FUNC '(' addition ')'
//                 | MEMORY | CONSTANT | '_'

// parser evaluates a token stream as it descends the grammar. There is no
// intermediate AST: expressions are small and evaluated exactly once, so each
// parse function returns the value of its production directly.
type parser struct {
	calc *Calculator
	toks []token
	pos  int
}

// peek returns the current token without consuming it. The EOF sentinel
// guarantees the position is always in range.
func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	p.pos++
	return tok
}

func (p *parser) parseExpression() (float64, error) {
	return p.parseAddition()
}

func (p *parser) parseAddition() (float64, error) {
	left, err := p.parseMultiplication()
	if err != nil {
		return 0, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokenOp || (tok.op != '+' && tok.op != '-') {
			return left, nil
		}
		p.pos++
		right, err := p.parseMultiplication()
		if err != nil {
			return 0, err
		}
		if tok.op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) parseMultiplication() (float64, error) {
	left, err := p.parsePower()
	if err != nil {
		return 0, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokenOp {
			return left, nil
		}
		switch tok.op {
		case '*':
			p.pos++
			right, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			left *= right
		case '/':
			p.pos++
			right, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, &DivideError{Op: '/'}
			}
			left /= right
		case '%':
			p.pos++
			right, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, &DivideError{Op: '%'}
			}
			left = math.Mod(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parsePower() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	if p.peek().kind == tokenPow {
		p.pos++
		// Recurse into the power level itself for right associativity:
		// 2**3**2 = 2**(3**2).
		right, err := p.parsePower()
		if err != nil {
			return 0, err
		}
		return math.Pow(left, right), nil
	}
	return left, nil
}

// parseUnary recurses back into the power level so that an exponent binds
// before the sign: -2**2 is -(2**2).
func (p *parser) parseUnary() (float64, error) {
	if tok := p.peek(); tok.kind == tokenOp {
		switch tok.op {
		case '-':
			p.pos++
			v, err := p.parsePower()
			return -v, err
		case '+':
			p.pos++
			return p.parsePower()
		}
	}
	return p.parseFactor()
}

func (p *parser) parseFactor() (float64, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNum:
		return tok.num, nil
	case tokenOpen:
		v, err := p.parseAddition()
		if err != nil {
			return 0, err
		}
		if p.peek().kind != tokenClose {
			return 0, &ParenError{Col: p.peek().pos}
		}
		p.pos++
		return v, nil
	case tokenFunc:
		fn := funcs[tok.name]
		if fn == nil {
			return 0, &UnknownFuncError{Name: tok.name, Col: tok.pos}
		}
		if p.peek().kind != tokenOpen {
			return 0, &CallError{Func: tok.name, Col: p.peek().pos}
		}
		p.pos++
		arg, err := p.parseAddition()
		if err != nil {
			return 0, err
		}
		if p.peek().kind != tokenClose {
			return 0, &ParenError{Col: p.peek().pos}
		}
		p.pos++
		return fn(arg)
	case tokenMem:
		return p.calc.memory[tok.mem], nil
	case tokenConst:
		return consts[tok.name], nil
	case tokenLast:
		return p.calc.last, nil
	case tokenEOF:
		return 0, &EndError{Col: tok.pos}
	default:
		return 0, &FactorError{Col: tok.pos}
	}
}
