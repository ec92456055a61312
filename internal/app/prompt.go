// Where: internal/app/prompt.go
// What: Interactive confirmation primitives.
// Why: Centralize TTY detection and yes/no gating; package vars allow test overrides.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// isTerminal reports whether the file refers to a terminal device.
var isTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptYesNo asks for confirmation and returns true only for an
// affirmative answer. On a terminal it renders a huh confirm; otherwise it
// falls back to reading a y/yes line from stdin.
var promptYesNo = func(message string) (bool, error) {
	if isTerminal(os.Stdin) && isTerminal(os.Stderr) {
		var confirmed bool
		if err := huh.NewConfirm().Title(message).Value(&confirmed).Run(); err != nil {
			return false, err
		}
		return confirmed, nil
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", message)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	trimmed := strings.TrimSpace(strings.ToLower(line))
	return trimmed == "y" || trimmed == "yes", nil
}
