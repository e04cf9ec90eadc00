package main

import "testing"

func TestRowUpdateExpandsTabs(t *testing.T) {
	row := newRow(0, []byte("a\tb"))
	row.update(nil)

	if got, want := string(row.render), "a       b"; got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
	if len(row.render) != 9 {
		t.Errorf("len(render) = %d, want 9", len(row.render))
	}
}

func TestCxToRxAcrossTab(t *testing.T) {
	row := newRow(0, []byte("a\tb"))
	row.update(nil)

	if got := cxToRx(row, 2); got != 8 {
		t.Errorf("cxToRx(2) = %d, want 8", got)
	}
}

func TestRxToCxRoundTrip(t *testing.T) {
	row := newRow(0, []byte("a\tbc\td"))
	row.update(nil)

	for cx := 0; cx <= len(row.chars); cx++ {
		rx := cxToRx(row, cx)
		if got := rxToCx(row, rx); got != cx {
			t.Errorf("rxToCx(cxToRx(%d)=%d) = %d, want %d", cx, rx, got, cx)
		}
	}
}

func TestRowInsertAndDeleteChar(t *testing.T) {
	e := &Editor{}
	row := newRow(0, []byte("hello"))
	row.update(e)

	row.deleteChar(e, 1)
	if got, want := string(row.chars), "hllo"; got != want {
		t.Errorf("chars = %q, want %q", got, want)
	}
	if e.dirty == 0 {
		t.Error("expected dirty to be incremented after deleteChar")
	}

	row.insertChar(e, 0, 'X')
	if got, want := string(row.chars), "Xhllo"; got != want {
		t.Errorf("chars = %q, want %q", got, want)
	}
}

func TestRowAppendString(t *testing.T) {
	e := &Editor{}
	row := newRow(0, []byte("foo"))
	row.update(e)

	row.appendBytes(e, []byte("bar"))
	if got, want := string(row.chars), "foobar"; got != want {
		t.Errorf("chars = %q, want %q", got, want)
	}
	if len(row.render) != len(row.hl) {
		t.Errorf("render/hl length mismatch: %d vs %d", len(row.render), len(row.hl))
	}
}
