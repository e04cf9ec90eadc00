package main

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Key tags. Raw bytes 0x00-0x7F are returned as themselves; BACKSPACE is
// the DEL byte; named keys live far above any byte value to keep the
// tag space disjoint.
const (
	keyBackspace = 127
	keyEsc       = 27
	keyEnter     = 13

	keyArrowLeft = 1000 + iota
	keyArrowRight
	keyArrowUp
	keyArrowDown
	keyDelete
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
)

// ctrlKey strips bits 5 and 6 from a rune, producing the control-key
// code a terminal sends when that key is pressed with Ctrl held.
func ctrlKey(k byte) int {
	return int(k) & 0x1f
}

// readByteBlocking reads a single byte, retrying indefinitely while the
// 100ms inter-byte timer expires with nothing available or the read is
// interrupted. It only returns once a byte has actually arrived or a
// real error occurs.
func readByteBlocking(fd int) (byte, error) {
	buf := make([]byte, 1)
	for {
		n, err := unix.Read(fd, buf)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("reading key: %w", err)
		}
		if n == 1 {
			return buf[0], nil
		}
		// n == 0: the 100ms read timer expired with no byte. Keep waiting.
	}
}

// readByteTimeout attempts a single read bounded by the terminal's
// 100ms inter-byte timer. ok is false if the timer expired first.
func readByteTimeout(fd int) (b byte, ok bool, err error) {
	buf := make([]byte, 1)
	for {
		n, err := unix.Read(fd, buf)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, false, fmt.Errorf("reading key: %w", err)
		}
		return buf[0], n == 1, nil
	}
}

// readKey blocks for one logical keystroke and decodes it into the key
// tag space described above, parsing multi-byte escape sequences into
// the named arrow/home/end/delete/page keys. A lone ESC whose follow-up
// bytes time out is returned as ESC itself.
func readKey(fd int) (int, error) {
	c, err := readByteBlocking(fd)
	if err != nil {
		return 0, err
	}
	if c != keyEsc {
		return int(c), nil
	}

	b1, ok, err := readByteTimeout(fd)
	if err != nil {
		return 0, err
	}
	if !ok {
		return keyEsc, nil
	}

	b2, ok, err := readByteTimeout(fd)
	if err != nil {
		return 0, err
	}
	if !ok {
		return keyEsc, nil
	}

	switch b1 {
	case '[':
		if b2 >= '0' && b2 <= '9' {
			b3, ok, err := readByteTimeout(fd)
			if err != nil {
				return 0, err
			}
			if !ok || b3 != '~' {
				return keyEsc, nil
			}
			switch b2 {
			case '1', '7':
				return keyHome, nil
			case '4', '8':
				return keyEnd, nil
			case '3':
				return keyDelete, nil
			case '5':
				return keyPageUp, nil
			case '6':
				return keyPageDown, nil
			}
			return keyEsc, nil
		}
		switch b2 {
		case 'A':
			return keyArrowUp, nil
		case 'B':
			return keyArrowDown, nil
		case 'C':
			return keyArrowRight, nil
		case 'D':
			return keyArrowLeft, nil
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
		return keyEsc, nil
	case 'O':
		switch b2 {
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
		return keyEsc, nil
	}

	return keyEsc, nil
}

// isControl reports whether b is an ASCII control byte (kilo treats
// bytes opaquely otherwise; no grapheme awareness).
func isControl(b byte) bool {
	return b < 32 || b == 127
}
