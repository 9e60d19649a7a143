package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmMore asks whether to reveal the next batch of bits
func ConfirmMore(in io.Reader, out io.Writer, next int64) (bool, error) {
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "Show %d more bits? (y/N): ", next)

	input, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return false, err
	}

	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes", nil
}
