package calc

import "strings"

// CommandKind classifies a whole input line before tokenization.
type CommandKind int

const (
	// CommandEvaluate treats the line as an expression.
	CommandEvaluate CommandKind = iota
	// CommandExit ends the session: q, quit, or exit.
	CommandExit
	// CommandHelp reprints the help banner: ? or help.
	CommandHelp
	// CommandClearResult zeroes the last result: clear.
	CommandClearResult
	// CommandMemoryStore stores the last result into a slot: m0 through m9.
	CommandMemoryStore
	// CommandMemoryClear zeroes a slot: c0 through c9.
	CommandMemoryClear
)

// Command is one classified input line.
type Command struct {
	Kind CommandKind
	// Slot is the memory slot index for store and clear commands.
	Slot int
	// Expr is the trimmed expression text for CommandEvaluate.
	Expr string
}

// memorySlot reports whether the trimmed line is exactly the prefix byte
// followed by one decimal digit, as in "m3" or "c7".
func memorySlot(line string, prefix byte) (int, bool) {
	line = strings.TrimSpace(line)
	if len(line) == 2 && line[0] == prefix && isDigit(line[1]) {
		return int(line[1] - '0'), true
	}
	return 0, false
}

// ParseCommand classifies one input line. The m0-m9 form is a store command
// only when it is the entire line; inside an expression the same token
// recalls the slot's value.
func ParseCommand(line string) Command {
	line = strings.TrimSpace(line)
	switch line {
	case "q", "quit", "exit":
		return Command{Kind: CommandExit}
	case "?", "help":
		return Command{Kind: CommandHelp}
	case "clear":
		return Command{Kind: CommandClearResult}
	}
	if slot, ok := memorySlot(line, 'm'); ok {
		return Command{Kind: CommandMemoryStore, Slot: slot}
	}
	if slot, ok := memorySlot(line, 'c'); ok {
		return Command{Kind: CommandMemoryClear, Slot: slot}
	}
	return Command{Kind: CommandEvaluate, Expr: line}
}
