package main

import (
	"fmt"
	"time"
)

// Editor is the single stateful aggregate the rest of the program
// operates on. It is passed by reference to every operation rather
// than kept as ambient package state, so it can be constructed and
// driven by a script of keys in a test.
type Editor struct {
	cx, cy         int
	rx             int
	rowOff, colOff int
	screenRows     int
	screenCols     int

	rows []*Row

	dirty    int
	filename string
	syntax   *Syntax

	statusMsg     string
	statusMsgTime time.Time

	findState *findState
	quitTimes int
}

func newEditor(screenRows, screenCols int) *Editor {
	return &Editor{
		screenRows: screenRows,
		screenCols: screenCols,
		findState:  newFindState(),
		quitTimes:  quitTimes,
	}
}

func (e *Editor) setStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusMsgTime = time.Now()
}

// insertRow inserts a new row at `at`, shifting later rows right and
// renumbering their index, then rebuilds the new row's render/hl.
func (e *Editor) insertRow(at int, chars []byte) {
	if at < 0 || at > len(e.rows) {
		return
	}
	row := newRow(at, chars)
	e.rows = append(e.rows, nil)
	copy(e.rows[at+1:], e.rows[at:])
	e.rows[at] = row
	for i := at + 1; i < len(e.rows); i++ {
		e.rows[i].index = i
	}
	row.update(e)
	e.dirty++
}

// deleteRow removes row `at`, shifting later rows left and decrementing
// their index.
func (e *Editor) deleteRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = append(e.rows[:at], e.rows[at+1:]...)
	for i := at; i < len(e.rows); i++ {
		e.rows[i].index = i
	}
	e.dirty++
}

// insertChar inserts c at the cursor, appending an empty row first if
// the cursor sits at the end-of-buffer sentinel.
func (e *Editor) insertChar(c byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.rows[e.cy].insertChar(e, e.cx, c)
	e.cx++
}

// insertNewline splits the current row at cx, or inserts an empty row
// when cx is 0.
func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.insertRow(e.cy, nil)
		e.cy++
		return
	}

	row := e.rows[e.cy]
	tail := append([]byte(nil), row.chars[e.cx:]...)
	e.insertRow(e.cy+1, tail)

	row = e.rows[e.cy]
	row.chars = row.chars[:e.cx]
	row.update(e)
	e.cx = 0
	e.cy++
}

// deleteChar deletes the character left of the cursor, joining with the
// previous row when at column 0 of a non-first row. No-op at (0,0).
func (e *Editor) deleteChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := e.rows[e.cy]
	if e.cx > 0 {
		row.deleteChar(e, e.cx-1)
		e.cx--
		return
	}

	prev := e.rows[e.cy-1]
	e.cx = len(prev.chars)
	prev.appendBytes(e, row.chars)
	e.deleteRow(e.cy)
	e.cy--
}

// moveCursor implements arrow-key navigation, including wrap across
// line ends, and clamps cx into the destination row's length.
func (e *Editor) moveCursor(key int) {
	var row *Row
	if e.cy < len(e.rows) {
		row = e.rows[e.cy]
	}

	switch key {
	case keyArrowUp:
		if e.cy > 0 {
			e.cy--
		}
	case keyArrowDown:
		if e.cy < len(e.rows) {
			e.cy++
		}
	case keyArrowLeft:
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.rows[e.cy].chars)
		}
	case keyArrowRight:
		if row != nil && e.cx < len(row.chars) {
			e.cx++
		} else if row != nil && e.cx == len(row.chars) && e.cy != len(e.rows) {
			e.cy++
			e.cx = 0
		}
	}

	row = nil
	if e.cy < len(e.rows) {
		row = e.rows[e.cy]
	}
	rowLen := 0
	if row != nil {
		rowLen = len(row.chars)
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}
