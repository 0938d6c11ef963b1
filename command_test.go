package calc_test

import (
	"testing"

	"calc"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		line string
		want calc.Command
	}{
		{"q", calc.Command{Kind: calc.CommandExit}},
		{"quit", calc.Command{Kind: calc.CommandExit}},
		{"exit", calc.Command{Kind: calc.CommandExit}},
		{" exit ", calc.Command{Kind: calc.CommandExit}},
		{"?", calc.Command{Kind: calc.CommandHelp}},
		{"help", calc.Command{Kind: calc.CommandHelp}},
		{"clear", calc.Command{Kind: calc.CommandClearResult}},
		{"m0", calc.Command{Kind: calc.CommandMemoryStore, Slot: 0}},
		{"m9", calc.Command{Kind: calc.CommandMemoryStore, Slot: 9}},
		{" m3 ", calc.Command{Kind: calc.CommandMemoryStore, Slot: 3}},
		{"c0", calc.Command{Kind: calc.CommandMemoryClear, Slot: 0}},
		{"c9", calc.Command{Kind: calc.CommandMemoryClear, Slot: 9}},
		// not commands: these are expressions
		{"m10", calc.Command{Kind: calc.CommandEvaluate, Expr: "m10"}},
		{"ma", calc.Command{Kind: calc.CommandEvaluate, Expr: "ma"}},
		{"c 1", calc.Command{Kind: calc.CommandEvaluate, Expr: "c 1"}},
		{"m3+1", calc.Command{Kind: calc.CommandEvaluate, Expr: "m3+1"}},
		{"quits", calc.Command{Kind: calc.CommandEvaluate, Expr: "quits"}},
		{" 1+2 ", calc.Command{Kind: calc.CommandEvaluate, Expr: "1+2"}},
	}
	for _, c := range cases {
		if got := calc.ParseCommand(c.line); got != c.want {
			t.Errorf("ParseCommand(%q): want %+v, got %+v", c.line, c.want, got)
		}
	}
}
