package calc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Run drives a calculator session: it reads lines from in, dispatches
// commands, and writes prompts, results, and errors to out. Run returns nil
// when the session ends with an exit command or EOF on in, and the read
// error otherwise.
func Run(in io.Reader, out io.Writer) error {
	c := New()
	scan := bufio.NewScanner(in)
	printHelp(out)
	fmt.Fprintln(out)
	for {
		fmt.Fprint(out, "> ")
		if !scan.Scan() {
			return scan.Err()
		}
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		switch cmd := ParseCommand(line); cmd.Kind {
		case CommandExit:
			fmt.Fprintln(out, "Goodbye!")
			return nil
		case CommandHelp:
			printHelp(out)
		case CommandClearResult:
			c.ClearResult()
			fmt.Fprintln(out, "Cleared last result")
		case CommandMemoryStore:
			fmt.Fprintf(out, "Saved %v to m%d\n", c.LastResult(), cmd.Slot)
			c.MemoryStore(cmd.Slot)
		case CommandMemoryClear:
			c.MemoryClear(cmd.Slot)
			fmt.Fprintf(out, "Cleared m%d\n", cmd.Slot)
		default:
			v, err := c.Evaluate(cmd.Expr)
			if err != nil {
				fmt.Fprintln(out, "Error:", err)
				continue
			}
			fmt.Fprintln(out, v)
		}
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Calculator REPL")
	fmt.Fprintln(w, "Supported operators: +, -, *, /, %, ** (or ^)")
	fmt.Fprintln(w, "Supported functions: sin, cos, tan, asin, acos, atan, ln, log2, log10, exp, sqrt")
	fmt.Fprintln(w, "                    round, floor, ceil, abs")
	fmt.Fprintln(w, "Constants: pi, e, phi, tau, sqrt2, sqrt3")
	fmt.Fprintln(w, "Use '_' to reference the last result")
	fmt.Fprintln(w, "Memory locations: m0 through m9")
	fmt.Fprintln(w, "  - Use 'm0' on a line by itself to save last result to m0")
	fmt.Fprintln(w, "  - Use 'm0' in expressions to recall value from m0")
	fmt.Fprintln(w, "  - Use 'c0' to clear memory location m0, 'clear' to clear last result")
	fmt.Fprintln(w, "Type 'q', 'quit', or 'exit' to exit")
}
