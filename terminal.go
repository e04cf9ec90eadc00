package main

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETA
)

// enableRawMode snapshots the terminal's current line discipline and
// installs the settings kilo needs: no echo, no canonical buffering,
// no signal generation, no flow control, no output post-processing,
// 8-bit characters, and a 100ms inter-byte read timeout.
func enableRawMode(fd int) (*unix.Termios, error) {
	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("getting termios: %w", err)
	}

	raw := *orig
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("setting termios: %w", err)
	}

	return orig, nil
}

// restoreTerminal installs termios settings saved by enableRawMode,
// draining queued output first (TCSAFLUSH semantics).
func restoreTerminal(fd int, orig *unix.Termios) error {
	if orig == nil {
		return nil
	}
	return unix.IoctlSetTermios(fd, unix.TIOCSETAF, orig)
}

// getWindowSize reports the terminal's rows and columns. It prefers the
// TIOCGWINSZ ioctl and falls back to the cursor-position probe when that
// ioctl fails or reports zero columns.
func getWindowSize(fd int) (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}

	if _, err := os.Stdout.Write([]byte("\x1b[999C\x1b[999B")); err != nil {
		return 0, 0, fmt.Errorf("probing window size: %w", err)
	}
	return getCursorPosition(fd)
}

// getCursorPosition sends a Device Status Report query and parses the
// terminal's reply (ESC [ rows ; cols R) from the input stream.
func getCursorPosition(fd int) (rows, cols int, err error) {
	if _, err := os.Stdout.Write([]byte("\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("requesting cursor position: %w", err)
	}

	var resp bytes.Buffer
	buf := make([]byte, 1)
	for i := 0; i < 32; i++ {
		n, err := unix.Read(fd, buf)
		if err != nil {
			return 0, 0, fmt.Errorf("reading cursor position: %w", err)
		}
		if n == 0 {
			continue
		}
		if buf[0] == 'R' {
			break
		}
		resp.WriteByte(buf[0])
	}

	raw := resp.Bytes()
	if len(raw) < 2 || raw[0] != '\x1b' || raw[1] != '[' {
		return 0, 0, fmt.Errorf("parsing cursor position response %q", raw)
	}
	if _, err := fmt.Sscanf(string(raw[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parsing cursor position response %q: %w", raw, err)
	}
	return rows, cols, nil
}
