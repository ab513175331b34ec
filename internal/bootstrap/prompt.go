package bootstrap

import (
	"bufio"
	"os"
	"strings"
)

// askLiteral prompts once and returns true only when the exact literal was
// typed. Any other input, or a read error like Ctrl+D, declines.
func askLiteral(p colorPrinter, prompt, literal string) bool {
	reader := bufio.NewReader(os.Stdin)
	cPrintf(p, "%s", prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == literal
}

// askEnterOrCancel returns true on a bare Enter and false when the user types
// cancel (case-insensitive). Any other input re-asks.
func askEnterOrCancel(p colorPrinter, prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	for {
		cPrintf(p, "%s", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer == "" {
			return true
		}
		if answer == "cancel" {
			return false
		}
		cPrintln(colWarn, "Invalid input.")
	}
}
