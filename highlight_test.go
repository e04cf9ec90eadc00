package main

import "testing"

func newTestEditorWithSyntax(name string) *Editor {
	e := &Editor{}
	for i := range syntaxDB {
		if syntaxDB[i].name == name {
			e.syntax = &syntaxDB[i]
			break
		}
	}
	return e
}

func TestHighlightKeywordAndNumber(t *testing.T) {
	e := newTestEditorWithSyntax("c")
	row := newRow(0, []byte("if (x == 42)"))
	e.rows = []*Row{row}
	row.update(e)

	// "if (x == 42)": i(0) f(1) space(2) ((3) x(4) space(5) =(6) =(7) space(8) 4(9) 2(10) )(11)
	want := map[int]HighlightClass{
		0: HLKeyword1,
		1: HLKeyword1,
		2: HLNormal,
		9: HLNumber,
		10: HLNumber,
	}
	for i, class := range want {
		if row.hl[i] != class {
			t.Errorf("hl[%d] = %v, want %v", i, row.hl[i], class)
		}
	}
}

func TestHighlightMultiLineCommentPropagation(t *testing.T) {
	e := newTestEditorWithSyntax("c")
	row0 := newRow(0, []byte("a /* b"))
	row1 := newRow(1, []byte("c */ d"))
	e.rows = []*Row{row0, row1}

	row1.update(e)
	row0.update(e)

	if !row0.hlOpenComment {
		t.Fatal("expected row 0 to end inside an open comment")
	}
	if row1.hlOpenComment {
		t.Fatal("expected row 1 to close the comment")
	}
	// "c */ d": c(0)=MLComment(inherited), space(1)=MLComment, '*'(2)='/'(3)=MLComment close
	if row1.hl[0] != HLMLComment {
		t.Errorf("row1.hl[0] = %v, want HLMLComment", row1.hl[0])
	}
	if row1.hl[5] != HLNormal {
		t.Errorf("row1.hl[5] (the trailing 'd') = %v, want HLNormal", row1.hl[5])
	}

	// Editing row 0 to close the comment on its own line should cascade
	// and clear row 1's MLComment tags entirely.
	row0.chars = []byte("a b")
	row0.update(e)

	if row0.hlOpenComment {
		t.Fatal("expected row 0 to no longer have an open comment")
	}
	if row1.hlOpenComment {
		t.Fatal("expected row 1's open-comment flag to clear")
	}
	for i, class := range row1.hl {
		if class == HLMLComment {
			t.Errorf("row1.hl[%d] is still MLComment after edit", i)
		}
	}
}

func TestHighlightStringWithEscape(t *testing.T) {
	e := newTestEditorWithSyntax("c")
	row := newRow(0, []byte(`"a\"b"`))
	e.rows = []*Row{row}
	row.update(e)

	for i := range row.render {
		if row.hl[i] != HLString {
			t.Errorf("hl[%d] = %v, want HLString", i, row.hl[i])
		}
	}
}

func TestSelectSyntaxByExtension(t *testing.T) {
	e := &Editor{filename: "main.go"}
	e.insertRow(0, []byte("package main"))
	e.selectSyntax()

	if e.syntax == nil || e.syntax.name != "go" {
		t.Fatalf("expected go syntax selected, got %v", e.syntax)
	}
}
