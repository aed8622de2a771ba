// Package writer implements the disassembly listing output.
package writer

import (
	"fmt"
	"io"
)

// Line is a single listing line describing one word.
type Line struct {
	Address uint32
	Bytes   [2]byte
	Text    string
}

// String formats the line as "AAA BBCC: TEXT", the address zero padded to
// three hex digits and the raw bytes in stream order.
func (l Line) String() string {
	return fmt.Sprintf("%03x %02x%02x: %s", l.Address, l.Bytes[0], l.Bytes[1], l.Text)
}

// Writer writes listing lines to an output.
type Writer struct {
	writer io.Writer
	lines  int
}

// New creates a new writer.
func New(writer io.Writer) *Writer {
	return &Writer{
		writer: writer,
	}
}

// WriteLine writes a single line followed by a newline.
func (w *Writer) WriteLine(line Line) error {
	if _, err := fmt.Fprintln(w.writer, line.String()); err != nil {
		return fmt.Errorf("writing line for address %03x: %w", line.Address, err)
	}
	w.lines++
	return nil
}

// Lines returns the number of lines written.
func (w *Writer) Lines() int {
	return w.lines
}
