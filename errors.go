package calc

// NumberError indicates a digit/dot run that does not parse as a number. It
// implements InputError.
type NumberError struct {
	// Text is the run the tokenizer was scanning.
	Text string
	// Col is the byte offset of the run.
	Col int
}

func (err *NumberError) Error() string {
	return "Invalid number"
}

func (err *NumberError) Pos() int {
	return err.Col
}

// UnknownFuncError indicates an identifier that is not in the known-function
// set. It implements InputError.
type UnknownFuncError struct {
	// Name is the identifier.
	Name string
	// Col is the position of the identifier.
	Col int
}

func (err *UnknownFuncError) Error() string {
	return "Unknown function '" + err.Name + "'. Available functions: " + funcNames
}

func (err *UnknownFuncError) Pos() int {
	return err.Col
}

// CallError indicates a function name not followed by an opening parenthesis.
// It implements InputError.
type CallError struct {
	// Func is the function name.
	Func string
	// Col is the position of the offending token.
	Col int
}

func (err *CallError) Error() string {
	return "Function '" + err.Func + "' requires parentheses: " + err.Func + "(...)"
}

func (err *CallError) Pos() int {
	return err.Col
}

// ParenError indicates an unmatched opening parenthesis. It implements
// InputError.
type ParenError struct {
	// Col is the position where a closing parenthesis was required.
	Col int
}

func (err *ParenError) Error() string {
	return "Expected closing parenthesis"
}

func (err *ParenError) Pos() int {
	return err.Col
}

// EndError indicates that the input ended where a factor was required. It
// implements InputError.
type EndError struct {
	// Col is the position of the end of input.
	Col int
}

func (err *EndError) Error() string {
	return "Unexpected end of expression"
}

func (err *EndError) Pos() int {
	return err.Col
}

// TrailingError indicates tokens remaining after a complete parse. It
// implements InputError.
type TrailingError struct {
	// Col is the position of the first leftover token.
	Col int
}

func (err *TrailingError) Error() string {
	return "Unexpected tokens at end of expression"
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// FactorError indicates a token that cannot begin a factor. It implements
// InputError.
type FactorError struct {
	// Col is the position of the token.
	Col int
}

func (err *FactorError) Error() string {
	return "Expected number, function, constant, memory location, _, or opening parenthesis"
}

func (err *FactorError) Pos() int {
	return err.Col
}

// DivideError is an evaluation error for division or modulo with a right
// operand of exactly zero.
type DivideError struct {
	// Op is '/' or '%'.
	Op byte
}

func (err *DivideError) Error() string {
	if err.Op == '%' {
		return "Modulo by zero"
	}
	return "Division by zero"
}

// DomainError is an evaluation error for a function argument outside the
// function's domain.
type DomainError struct {
	// Func is the function name.
	Func string
}

func (err *DomainError) Error() string {
	switch err.Func {
	case "asin", "acos":
		return err.Func + " requires argument between -1 and 1"
	case "ln", "log2", "log10":
		return err.Func + " requires positive argument"
	case "sqrt":
		return "sqrt requires non-negative argument"
	}
	return err.Func + " argument outside domain"
}

// InputError is an error with position information. Every tokenizer and
// parser error implements InputError; evaluation errors (DivideError,
// DomainError) do not, as they concern values rather than input text.
type InputError interface {
	error
	// Pos returns the byte offset of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*UnknownFuncError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*EndError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*FactorError)(nil)
)
