// Package input reads terminal input and maps it to viewer intents.
// Raw codes from a device pass through a binding table, so backends deal
// in actions instead of key names.
package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Both CSI sequences (ESC [) and SS3 sequences (ESC O) occur.
	if b2 != '[' && b2 != 'O' {
		return ""
	}
	b3, err := readByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// ReadKey reads one key press in raw mode and returns its code. Arrow
// keys return immediately without needing Enter.
func ReadKey() (string, error) {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	if b == 0x1b {
		if code := tryReadArrowKey(b); code != "" {
			return code, nil
		}
		return "escape", nil
	}
	if b == 3 {
		// Ctrl+C
		return "quit", nil
	}
	if b == '\n' || b == '\r' {
		return "enter", nil
	}
	if b >= 32 && b < 127 {
		return string(b), nil
	}
	return "", nil
}
