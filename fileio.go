package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// openFile sets e.filename, triggers filetype selection, and loads the
// file line by line, stripping trailing \r and/or \n from each line.
// dirty is reset to 0 once the whole file has loaded.
func openFile(e *Editor, filename string) error {
	e.filename = filename
	e.selectSyntax()

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening file %s: %w", filename, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		e.insertRow(len(e.rows), []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading file %s: %w", filename, err)
	}

	e.dirty = 0
	return nil
}

// rowsToBytes serialises the buffer as the concatenation of each row's
// chars followed by '\n', including after the last row.
func rowsToBytes(e *Editor) []byte {
	var buf bytes.Buffer
	for _, row := range e.rows {
		buf.Write(row.chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// save writes the buffer to e.filename (prompting for one if unset),
// truncating the target to the exact serialised length before writing
// it. This open/truncate/write sequence is not crash-safe: a crash
// between the truncate and the write loses the file's prior contents.
// A rename-into-place would avoid that window but isn't done here.
func (e *Editor) save(fd int) {
	if e.filename == "" {
		name, ok := e.prompt(fd, "Save as: %s", nil)
		if !ok {
			e.setStatusMessage("Save abort!")
			return
		}
		e.filename = name
		e.selectSyntax()
	}

	contents := rowsToBytes(e)

	f, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.setStatusMessage("Can't save! I/O error: %s", err.Error())
		return
	}
	defer f.Close()

	if err := f.Truncate(int64(len(contents))); err != nil {
		e.setStatusMessage("Can't save! I/O error: %s", err.Error())
		return
	}

	n, err := f.Write(contents)
	if err != nil {
		e.setStatusMessage("Can't save! I/O error: %s", err.Error())
		return
	}
	if n != len(contents) {
		e.setStatusMessage("Can't save! I/O error: short write (%d/%d bytes)", n, len(contents))
		return
	}

	e.dirty = 0
	e.setStatusMessage("%d bytes written to disk", len(contents))
}
