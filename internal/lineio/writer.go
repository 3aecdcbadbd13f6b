package lineio

import (
	"bufio"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Writer emits one text line per record with a trailing newline, gzipping the
// stream when requested. Close flushes the buffers and the gzip trailer but
// leaves the underlying writer open; the caller owns that handle.
type Writer struct {
	buf *bufio.Writer
	gz  *gzip.Writer
}

// NewWriter wraps w. When compress is true the lines are gzip-compressed.
func NewWriter(w io.Writer, compress bool) *Writer {
	if compress {
		gz := gzip.NewWriter(w)
		return &Writer{buf: bufio.NewWriter(gz), gz: gz}
	}
	return &Writer{buf: bufio.NewWriter(w)}
}

// WriteLine writes text followed by a newline.
func (w *Writer) WriteLine(text string) error {
	if _, err := w.buf.WriteString(text); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

// Close flushes buffered data and finalizes the gzip stream if one is active.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		return err
	}
	if w.gz != nil {
		return w.gz.Close()
	}
	return nil
}
