package main

import (
	"fmt"
	"time"
)

// scroll recomputes rx from (cx, cy) and clamps rowOff/colOff so the
// cursor stays inside the viewport, snapping by the minimum needed.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < len(e.rows) {
		e.rx = cxToRx(e.rows[e.cy], e.cx)
	}

	if e.cy < e.rowOff {
		e.rowOff = e.cy
	}
	if e.cy >= e.rowOff+e.screenRows {
		e.rowOff = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOff {
		e.colOff = e.rx
	}
	if e.rx >= e.colOff+e.screenCols {
		e.colOff = e.rx - e.screenCols + 1
	}
}

func (e *Editor) drawWelcome(ab *appendBuffer) {
	welcome := fmt.Sprintf("Kilo editor -- version %s", kiloVersion)
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}
	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		ab.appendString("~")
		padding--
	}
	for ; padding > 0; padding-- {
		ab.appendString(" ")
	}
	ab.appendString(welcome)
}

func (e *Editor) drawRows(ab *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		fileRow := y + e.rowOff
		if fileRow >= len(e.rows) {
			if len(e.rows) == 0 && y == e.screenRows/3 {
				e.drawWelcome(ab)
			} else {
				ab.appendString("~")
			}
		} else {
			e.drawRow(ab, e.rows[fileRow])
		}
		ab.appendString("\x1b[K")
		ab.appendString("\r\n")
	}
}

func (e *Editor) drawRow(ab *appendBuffer, row *Row) {
	length := len(row.render) - e.colOff
	if length < 0 {
		length = 0
	}
	if length > e.screenCols {
		length = e.screenCols
	}
	if length == 0 {
		return
	}

	render := row.render[e.colOff : e.colOff+length]
	hl := row.hl[e.colOff : e.colOff+length]
	currentColor := -1

	for i, c := range render {
		if isControl(c) {
			symbol := byte('?')
			if c <= 26 {
				symbol = '@' + c
			}
			ab.appendString("\x1b[7m")
			ab.buf = append(ab.buf, symbol)
			ab.appendString("\x1b[m")
			if currentColor != -1 {
				ab.appendString(fmt.Sprintf("\x1b[%dm", currentColor))
			}
			continue
		}

		if hl[i] == HLNormal {
			if currentColor != -1 {
				ab.appendString("\x1b[39m")
				currentColor = -1
			}
			ab.buf = append(ab.buf, c)
			continue
		}

		color := syntaxColor(hl[i])
		if currentColor != color {
			ab.appendString(fmt.Sprintf("\x1b[%dm", color))
			currentColor = color
		}
		ab.buf = append(ab.buf, c)
	}
	ab.appendString("\x1b[39m")
}

func (e *Editor) drawStatusBar(ab *appendBuffer) {
	ab.appendString("\x1b[7m")

	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	status := fmt.Sprintf("%s - %d lines", name, len(e.rows))
	if e.dirty > 0 {
		status += " (modified)"
	}

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.name
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, len(e.rows))

	length := len(status)
	if length > e.screenCols {
		length = e.screenCols
	}
	ab.appendString(status[:length])

	for length < e.screenCols {
		if e.screenCols-length == len(rstatus) {
			ab.appendString(rstatus)
			break
		}
		ab.appendString(" ")
		length++
	}

	ab.appendString("\x1b[m")
	ab.appendString("\r\n")
}

func (e *Editor) drawMessageBar(ab *appendBuffer) {
	ab.appendString("\x1b[K")
	msg := e.statusMsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if len(msg) > 0 && time.Since(e.statusMsgTime) < statusMsgFade {
		ab.appendString(msg)
	}
}

func (e *Editor) refreshScreen() {
	e.scroll()

	var ab appendBuffer
	ab.appendString("\x1b[?25l")
	ab.appendString("\x1b[H")

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	ab.appendString(fmt.Sprintf("\x1b[%d;%dH", (e.cy-e.rowOff)+1, (e.rx-e.colOff)+1))
	ab.appendString("\x1b[?25h")

	ab.flush()
}
