package tuitest

import (
	"bytes"
	"io"
)

// terminalReplies answers the queries termenv and Bubble Tea send at start
// up; without them the program waits for a real terminal to respond.
var terminalReplies = []struct {
	query, reply []byte
}{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

type terminalResponder struct {
	w   io.Writer
	buf []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, buf: make([]byte, 0, 128)}
}

// Process scans output for queries; a query split across reads is still
// matched because a short tail is kept between calls.
func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for tr.answerOne() {
	}
	if len(tr.buf) > 256 {
		tr.buf = tr.buf[len(tr.buf)-64:]
	}
}

func (tr *terminalResponder) answerOne() bool {
	answered := false
	for _, r := range terminalReplies {
		idx := bytes.Index(tr.buf, r.query)
		if idx < 0 {
			continue
		}
		tr.buf = tr.buf[idx+len(r.query):]
		_, _ = tr.w.Write(r.reply)
		answered = true
	}
	return answered
}
