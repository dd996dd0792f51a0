package runner

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
)

type palette struct {
	enabled bool
}

// paletteFor enables colors only for interactive terminals with colors
// not explicitly disabled.
func paletteFor(writer io.Writer, noColor bool) palette {
	return palette{enabled: !noColor && writerIsTerminal(writer)}
}

func writerIsTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func (p palette) wrap(code, text string) string {
	if !p.enabled {
		return text
	}
	return code + text + ansiReset
}

// printExample emits the question, the produced answer, and a blank
// separator line.
func printExample(writer io.Writer, pal palette, result ExampleResult) {
	fmt.Fprintf(writer, "%s %s\n", pal.wrap(ansiBold, "Q:"), result.Question)
	fmt.Fprintf(writer, "%s %s\n", pal.wrap(ansiBold, "A:"), result.Answer)
	fmt.Fprintln(writer)
}

// printTally emits the final correct/total line.
func printTally(writer io.Writer, pal palette, correct, total int) {
	code := ansiGreen
	if correct < total {
		code = ansiRed
	}
	fmt.Fprintf(writer, "Correct answers: %s\n", pal.wrap(code, fmt.Sprintf("%d/%d", correct, total)))
}
