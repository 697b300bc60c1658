package app

import (
	"bytes"

	"ember/hal"
)

// logWriter adapts a line-oriented hal.Logger to io.Writer. Partial lines
// are buffered until their newline arrives.
type logWriter struct {
	l   hal.Logger
	buf bytes.Buffer
}

func newLogWriter(l hal.Logger) *logWriter {
	return &logWriter{l: l}
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadBytes('\n')
		if err != nil {
			// No newline yet; keep the partial line buffered.
			w.buf.Write(line)
			break
		}
		w.l.WriteLineBytes(line[:len(line)-1])
	}
	return len(p), nil
}
