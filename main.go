package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/sys/unix"
)

func main() {
	flag.Parse()
	filename := flag.Arg(0)

	fd := int(os.Stdin.Fd())

	origTermios, err := enableRawMode(fd)
	if err != nil {
		die(fd, nil, fmt.Errorf("enabling raw mode: %w", err))
	}
	defer restoreTerminal(fd, origTermios)

	rows, cols, err := getWindowSize(fd)
	if err != nil {
		die(fd, origTermios, fmt.Errorf("getting window size: %w", err))
	}

	e := newEditor(rows-2, cols)

	if filename != "" {
		if err := openFile(e, filename); err != nil {
			die(fd, origTermios, err)
		}
	}

	e.setStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		e.refreshScreen()
		quit, err := processKeypress(e, fd)
		if err != nil {
			die(fd, origTermios, err)
		}
		if quit {
			break
		}
	}

	os.Stdout.Write([]byte("\x1b[2J\x1b[H"))
}

// processKeypress reads and dispatches one key. It returns quit=true
// when the editor should exit normally (Ctrl-Q accepted).
func processKeypress(e *Editor, fd int) (quit bool, err error) {
	key, err := readKey(fd)
	if err != nil {
		return false, fmt.Errorf("processing key press: %w", err)
	}

	switch key {
	case ctrlKey('q'):
		if e.dirty > 0 && e.quitTimes > 0 {
			e.setStatusMessage("WARNING!!! File has unsaved changes. "+
				"Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return false, nil
		}
		return true, nil

	case keyArrowUp, keyArrowDown, keyArrowLeft, keyArrowRight:
		e.moveCursor(key)

	case keyPageUp, keyPageDown:
		if key == keyPageUp {
			e.cy = e.rowOff
		} else {
			e.cy = e.rowOff + e.screenRows - 1
			if e.cy > len(e.rows) {
				e.cy = len(e.rows)
			}
		}
		for i := 0; i < e.screenRows; i++ {
			if key == keyPageUp {
				e.moveCursor(keyArrowUp)
			} else {
				e.moveCursor(keyArrowDown)
			}
		}

	case keyHome:
		e.cx = 0

	case keyEnd:
		if e.cy < len(e.rows) {
			e.cx = len(e.rows[e.cy].chars)
		}

	case keyBackspace, ctrlKey('h'):
		e.deleteChar()

	case keyDelete:
		e.moveCursor(keyArrowRight)
		e.deleteChar()

	case keyEnter:
		e.insertNewline()

	case ctrlKey('l'), keyEsc:
		// reserved, no-op

	case ctrlKey('s'):
		e.save(fd)

	case ctrlKey('f'):
		e.find(fd)

	default:
		if !isControl(byte(key)) && key < 128 {
			e.insertChar(byte(key))
		}
	}

	e.quitTimes = quitTimes
	return false, nil
}

// die restores the terminal (the normal-exit defer never runs once
// log.Fatal calls os.Exit), clears the screen, and exits non-zero
// after printing a one-line diagnostic naming the failing operation.
func die(fd int, orig *unix.Termios, err error) {
	restoreTerminal(fd, orig)
	os.Stdout.Write([]byte("\x1b[2J\x1b[H"))
	log.Fatal(err)
}
