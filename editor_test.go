package main

import "testing"

func TestInsertNewlineSplitsAtCx(t *testing.T) {
	e := newEditor(24, 80)
	e.insertRow(0, []byte("hello world"))
	e.cx = 5
	e.cy = 0

	e.insertNewline()

	if len(e.rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(e.rows))
	}
	if got, want := string(e.rows[0].chars), "hello"; got != want {
		t.Errorf("rows[0].chars = %q, want %q", got, want)
	}
	if got, want := string(e.rows[1].chars), " world"; got != want {
		t.Errorf("rows[1].chars = %q, want %q", got, want)
	}
	if e.cx != 0 || e.cy != 1 {
		t.Errorf("cursor = (%d,%d), want (0,1)", e.cx, e.cy)
	}
}

func TestInsertNewlineAtColumnZero(t *testing.T) {
	e := newEditor(24, 80)
	e.insertRow(0, []byte("hello"))
	e.cx, e.cy = 0, 0

	e.insertNewline()

	if len(e.rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(e.rows))
	}
	if got := string(e.rows[0].chars); got != "" {
		t.Errorf("rows[0].chars = %q, want empty", got)
	}
	if got := string(e.rows[1].chars); got != "hello" {
		t.Errorf("rows[1].chars = %q, want %q", got, "hello")
	}
}

func TestDeleteCharNoOpAtOrigin(t *testing.T) {
	e := newEditor(24, 80)
	e.insertRow(0, []byte("hi"))
	dirtyBefore := e.dirty

	e.deleteChar()

	if e.dirty != dirtyBefore {
		t.Errorf("dirty changed on no-op delete at (0,0): before=%d after=%d", dirtyBefore, e.dirty)
	}
	if got := string(e.rows[0].chars); got != "hi" {
		t.Errorf("chars = %q, want unchanged %q", got, "hi")
	}
}

func TestBackspaceJoinsRows(t *testing.T) {
	e := newEditor(24, 80)
	e.insertRow(0, []byte("foo"))
	e.insertRow(1, []byte("bar"))
	e.cx, e.cy = 0, 1

	e.deleteChar()

	if len(e.rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(e.rows))
	}
	if got, want := string(e.rows[0].chars), "foobar"; got != want {
		t.Errorf("chars = %q, want %q", got, want)
	}
	if e.cx != 3 || e.cy != 0 {
		t.Errorf("cursor = (%d,%d), want (3,0)", e.cx, e.cy)
	}
}

func TestMoveCursorWrapsAcrossLineEnds(t *testing.T) {
	e := newEditor(24, 80)
	e.insertRow(0, []byte("ab"))
	e.insertRow(1, []byte("cd"))

	e.cx, e.cy = 2, 0
	e.moveCursor(keyArrowRight)
	if e.cx != 0 || e.cy != 1 {
		t.Errorf("right at eol = (%d,%d), want (0,1)", e.cx, e.cy)
	}

	e.moveCursor(keyArrowLeft)
	if e.cx != 2 || e.cy != 0 {
		t.Errorf("left at col0 = (%d,%d), want (2,0)", e.cx, e.cy)
	}
}

func TestMoveCursorClampsToShorterRow(t *testing.T) {
	e := newEditor(24, 80)
	e.insertRow(0, []byte("a long line"))
	e.insertRow(1, []byte("x"))
	e.cx, e.cy = 10, 0

	e.moveCursor(keyArrowDown)

	if e.cx != 1 {
		t.Errorf("cx = %d, want clamped to 1", e.cx)
	}
}

func TestInsertRowRenumbersIndex(t *testing.T) {
	e := newEditor(24, 80)
	e.insertRow(0, []byte("a"))
	e.insertRow(1, []byte("c"))
	e.insertRow(1, []byte("b"))

	for i, row := range e.rows {
		if row.index != i {
			t.Errorf("rows[%d].index = %d, want %d", i, row.index, i)
		}
	}
	if got, want := string(e.rows[1].chars), "b"; got != want {
		t.Errorf("rows[1].chars = %q, want %q", got, want)
	}
}

func TestDeleteRowRenumbersIndex(t *testing.T) {
	e := newEditor(24, 80)
	e.insertRow(0, []byte("a"))
	e.insertRow(1, []byte("b"))
	e.insertRow(2, []byte("c"))

	e.deleteRow(1)

	if len(e.rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(e.rows))
	}
	for i, row := range e.rows {
		if row.index != i {
			t.Errorf("rows[%d].index = %d, want %d", i, row.index, i)
		}
	}
	if got := string(e.rows[1].chars); got != "c" {
		t.Errorf("rows[1].chars = %q, want %q", got, "c")
	}
}
