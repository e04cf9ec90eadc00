package main

import "os"

// appendBuffer accumulates one frame's worth of output so it can be
// flushed to the terminal in a single write, avoiding visible tearing.
// It has a single producer per frame and needs no synchronization.
type appendBuffer struct {
	buf []byte
}

func (a *appendBuffer) append(p []byte) {
	a.buf = append(a.buf, p...)
}

func (a *appendBuffer) appendString(s string) {
	a.buf = append(a.buf, s...)
}

// flush writes the whole accumulated frame to stdout in one call and
// discards the buffer's contents.
func (a *appendBuffer) flush() {
	os.Stdout.Write(a.buf)
	a.buf = a.buf[:0]
}
