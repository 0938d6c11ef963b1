package calc

// Calculator holds the evaluator state for one session: ten memory slots and
// the register holding the last successful result. The zero value is ready to
// use. It is not safe to use a Calculator concurrently.
type Calculator struct {
	memory [10]float64
	last   float64
}

// New creates a calculator with all memory slots and the last result zeroed.
func New() *Calculator {
	return &Calculator{}
}

// Evaluate parses and evaluates one line. On success it updates the last
// result to the returned value; on error the last result is untouched.
//
// Evaluate always treats m0 through m9 as slot recalls, even alone on the
// line; the whole-line store form is a command, classified by ParseCommand
// before evaluation.
func (c *Calculator) Evaluate(line string) (float64, error) {
	toks, err := tokenize(line)
	if err != nil {
		return 0, err
	}
	p := parser{calc: c, toks: toks}
	v, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	if p.peek().kind != tokenEOF {
		return 0, &TrailingError{Col: p.peek().pos}
	}
	c.last = v
	return v, nil
}

// MemoryStore commits the last result into slot i. Panics unless 0 <= i <= 9.
func (c *Calculator) MemoryStore(i int) {
	c.memory[i] = c.last
}

// MemoryClear sets slot i to zero. Panics unless 0 <= i <= 9.
func (c *Calculator) MemoryClear(i int) {
	c.memory[i] = 0
}

// Memory returns the value in slot i. Panics unless 0 <= i <= 9.
func (c *Calculator) Memory(i int) float64 {
	return c.memory[i]
}

// ClearResult sets the last result to zero.
func (c *Calculator) ClearResult() {
	c.last = 0
}

// LastResult returns the most recent successful expression value, or zero if
// none.
func (c *Calculator) LastResult() float64 {
	return c.last
}
