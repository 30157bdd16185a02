package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/snakes-ladders/internal/engine"
	"github.com/vovakirdan/snakes-ladders/internal/platform/tui"
)

func printEvents(out io.Writer, events []engine.Event) {
	for _, ev := range events {
		fmt.Fprintln(out, tui.DescribeEvent(ev))
	}
}

func printStatus(out io.Writer, s engine.State) {
	parts := make([]string, len(s.Players))
	for i, p := range s.Players {
		parts[i] = fmt.Sprintf("%s %d", p.Name, p.Position)
	}

	if s.Finished() {
		fmt.Fprintf(out, "Final: %s\n", strings.Join(parts, " | "))
		return
	}
	fmt.Fprintf(out, "Turn: %s | %s\n", s.CurrentPlayer().Name, strings.Join(parts, " | "))
}
