package cli

import (
	"bufio"
	"os"
	"strings"
)

// stdinLines returns non-empty trimmed lines from piped stdin, so
// `cat notes | marc add` records one line each. Returns nil on a TTY.
func stdinLines() []string {
	fi, err := os.Stdin.Stat()
	if err != nil || (fi.Mode()&os.ModeCharDevice) != 0 {
		return nil
	}
	var lines []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
