package main

import "bytes"

// findState holds the cross-keystroke state of one incremental-search
// session: the last matched row, the active search direction, and a
// rollback copy of whatever row's hl was last painted with HLMatch.
// It is captured by the callback closure rather than kept as package
// globals, so a second concurrent search (tests included) can't stomp
// on it.
type findState struct {
	lastMatch   int
	direction   int
	savedHLLine int
	savedHL     []HighlightClass
}

func newFindState() *findState {
	return &findState{lastMatch: -1, direction: 1}
}

func (fs *findState) reset() {
	fs.lastMatch = -1
	fs.direction = 1
}

// callback is the prompt observer driving incremental find: it rolls
// back the previous match's highlight, updates search direction from
// arrow keys, then scans forward/backward from the last match (wrapping
// across the ends) for the first row containing query.
func (fs *findState) callback(e *Editor, query []byte, key int) {
	if fs.savedHL != nil {
		e.rows[fs.savedHLLine].hl = fs.savedHL
		fs.savedHL = nil
	}

	if key == keyEnter || key == keyEsc {
		fs.reset()
		return
	}

	switch key {
	case keyArrowRight, keyArrowDown:
		fs.direction = 1
	case keyArrowLeft, keyArrowUp:
		fs.direction = -1
	default:
		fs.lastMatch = -1
		fs.direction = 1
	}

	if len(query) == 0 || len(e.rows) == 0 {
		return
	}

	current := fs.lastMatch
	for range e.rows {
		current += fs.direction
		if current == -1 {
			current = len(e.rows) - 1
		} else if current == len(e.rows) {
			current = 0
		}

		row := e.rows[current]
		idx := bytes.Index(row.render, query)
		if idx == -1 {
			continue
		}

		fs.lastMatch = current
		e.cy = current
		e.cx = rxToCx(row, idx)
		e.rowOff = len(e.rows)

		fs.savedHLLine = current
		fs.savedHL = append([]HighlightClass(nil), row.hl...)
		for i := idx; i < idx+len(query) && i < len(row.hl); i++ {
			row.hl[i] = HLMatch
		}
		break
	}
}

// find snapshots cursor/scroll state, drives an incremental search via
// prompt, and restores the snapshot if the user cancels.
func (e *Editor) find(fd int) {
	savedCx, savedCy := e.cx, e.cy
	savedColOff, savedRowOff := e.colOff, e.rowOff

	fs := newFindState()
	e.findState = fs

	_, ok := e.prompt(fd, "Search: %s (ESC to cancel)", func(query []byte, key int) {
		fs.callback(e, query, key)
	})

	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.colOff, e.rowOff = savedColOff, savedRowOff
	}
}
