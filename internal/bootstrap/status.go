package bootstrap

import (
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// termWidth returns the current terminal width, or 80 when stdout is not a
// terminal. The width is read where it is used instead of at process start.
func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// statusBox prints msg between full-width border lines, the way the original
// installer announces stages and surfaces fatal errors.
func statusBox(p colorPrinter, msg string) {
	border := strings.Repeat("#", termWidth())
	cPrintln(p, border)
	cPrintln(p, msg)
	cPrintln(p, border)
}

// newStageBar returns a progress bar over the orchestration stages, or nil
// when stdout is not a terminal or verbose diagnostics are on.
func newStageBar(stages int) *progressbar.ProgressBar {
	if Verbose || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil
	}
	return progressbar.NewOptions(stages,
		progressbar.OptionSetDescription("Setting up tarstall"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// advanceStage announces the next stage and moves the bar forward one step.
func advanceStage(bar *progressbar.ProgressBar, desc string) {
	colArrow.Print("-> ")
	colSuccess.Println(desc)
	if bar != nil {
		bar.Describe(desc)
		_ = bar.Add(1)
	}
}
