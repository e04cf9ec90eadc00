package main

import (
	"bytes"
	"strings"
)

// SyntaxFlag is a bitset of optional highlighting features a filetype
// descriptor can request.
type SyntaxFlag int

const (
	HighlightNumbers SyntaxFlag = 1 << iota
	HighlightStrings
)

// Syntax is a filetype descriptor: display name, filename-matching
// patterns, a keyword list (keywords ending in '|' are Keyword2), a
// single-line comment prefix, multi-line comment open/close markers,
// and a feature-flag bitset.
type Syntax struct {
	name                   string
	filematch              []string
	keywords               []string
	singleLineComment      string
	multiLineCommentStart  string
	multiLineCommentEnd    string
	flags                  SyntaxFlag
}

var syntaxDB = []Syntax{
	{
		name:      "c",
		filematch: []string{".c", ".h", ".cpp"},
		keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|", "void|",
		},
		singleLineComment:     "//",
		multiLineCommentStart: "/*",
		multiLineCommentEnd:   "*/",
		flags:                 HighlightNumbers | HighlightStrings,
	},
	{
		name:      "go",
		filematch: []string{".go"},
		keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "go", "goto", "if", "import", "map", "package",
			"range", "return", "select", "struct", "switch", "type", "var",
			"interface|", "func|", "int|", "int8|", "int16|", "int32|", "int64|",
			"uint|", "uint8|", "uint16|", "uint32|", "uint64|", "float32|", "float64|",
			"string|", "bool|", "byte|", "rune|", "error|",
		},
		singleLineComment:     "//",
		multiLineCommentStart: "/*",
		multiLineCommentEnd:   "*/",
		flags:                 HighlightNumbers | HighlightStrings,
	},
}

const separatorBytes = ",.()+-/*=~%<>[]; \t\n\x00"

func isSeparator(c byte) bool {
	return c == 0 || strings.IndexByte(separatorBytes, c) >= 0
}

// selectSyntax picks the filetype descriptor matching e.filename and
// rescans every row. A descriptor matches when one of its patterns
// either begins with '.' and equals the filename's extension, or
// doesn't begin with '.' and appears as a substring of the filename.
func (e *Editor) selectSyntax() {
	e.syntax = nil
	if e.filename == "" {
		return
	}

	ext := ""
	if i := strings.LastIndexByte(e.filename, '.'); i != -1 {
		ext = e.filename[i:]
	}

	for i := range syntaxDB {
		s := &syntaxDB[i]
		for _, pattern := range s.filematch {
			isExt := pattern[0] == '.'
			if (isExt && ext == pattern) || (!isExt && strings.Contains(e.filename, pattern)) {
				e.syntax = s
				for _, row := range e.rows {
					row.update(e)
				}
				return
			}
		}
	}
}

// propagateHighlight walks forward from the row after `row`, rescanning
// each until a scan leaves hlOpenComment unchanged. This is the
// work-list equivalent of the source's recursive propagation, bounding
// stack depth to O(1) regardless of how many rows are affected.
func (e *Editor) propagateHighlight(row *Row) {
	idx := row.index + 1
	for idx < len(e.rows) {
		if !e.highlightRow(e.rows[idx]) {
			return
		}
		idx++
	}
}

// highlightRow regenerates hl for row from render, returning whether
// hlOpenComment changed so the caller can decide whether to propagate.
func (e *Editor) highlightRow(row *Row) bool {
	row.hl = make([]HighlightClass, len(row.render))

	if e.syntax == nil {
		wasOpen := row.hlOpenComment
		row.hlOpenComment = false
		return wasOpen
	}

	s := e.syntax
	scs := []byte(s.singleLineComment)
	mcs := []byte(s.multiLineCommentStart)
	mce := []byte(s.multiLineCommentEnd)

	prevSep := true
	var inString byte
	inComment := row.index > 0 && row.index-1 < len(e.rows) && e.rows[row.index-1].hlOpenComment

	render := row.render
	i := 0
	for i < len(render) {
		c := render[i]
		var prevHL HighlightClass
		if i > 0 {
			prevHL = row.hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment && bytes.HasPrefix(render[i:], scs) {
			for j := i; j < len(render); j++ {
				row.hl[j] = HLComment
			}
			break
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				row.hl[i] = HLMLComment
				if bytes.HasPrefix(render[i:], mce) {
					for j := 0; j < len(mce); j++ {
						row.hl[i+j] = HLMLComment
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], mcs) {
				for j := 0; j < len(mcs); j++ {
					row.hl[i+j] = HLMLComment
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if s.flags&HighlightStrings != 0 {
			if inString != 0 {
				row.hl[i] = HLString
				if c == '\\' && i+1 < len(render) {
					row.hl[i+1] = HLString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				row.hl[i] = HLString
				i++
				continue
			}
		}

		if s.flags&HighlightNumbers != 0 {
			isDigit := c >= '0' && c <= '9'
			if (isDigit && (prevSep || prevHL == HLNumber)) || (c == '.' && prevHL == HLNumber) {
				row.hl[i] = HLNumber
				prevSep = false
				i++
				continue
			}
		}

		if prevSep {
			matched := false
			for _, kw := range s.keywords {
				class := HLKeyword1
				word := kw
				if strings.HasSuffix(kw, "|") {
					class = HLKeyword2
					word = kw[:len(kw)-1]
				}
				klen := len(word)
				if klen == 0 || i+klen > len(render) {
					continue
				}
				if !bytes.Equal(render[i:i+klen], []byte(word)) {
					continue
				}
				if i+klen < len(render) && !isSeparator(render[i+klen]) {
					continue
				}
				for k := 0; k < klen; k++ {
					row.hl[i+k] = class
				}
				i += klen
				matched = true
				break
			}
			if matched {
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed := row.hlOpenComment != inComment
	row.hlOpenComment = inComment
	return changed
}

// syntaxColor maps a highlight class to its ANSI SGR foreground code.
func syntaxColor(hl HighlightClass) int {
	switch hl {
	case HLNumber:
		return 31
	case HLMatch:
		return 34
	case HLString:
		return 35
	case HLComment, HLMLComment:
		return 36
	case HLKeyword1:
		return 33
	case HLKeyword2:
		return 32
	default:
		return 39
	}
}
