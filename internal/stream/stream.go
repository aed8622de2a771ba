// Package stream walks a byte stream as a sequence of fixed width words.
package stream

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// WordSize is the size of a word in bytes.
const WordSize = 2

// Word is a single big-endian word read from the stream together with the
// address it is assigned to.
type Word struct {
	Address uint32
	Bytes   [WordSize]byte
}

// Value returns the 16 bit value of the word.
func (w Word) Value() uint16 {
	return uint16(w.Bytes[0])<<8 | uint16(w.Bytes[1])
}

// Config controls the addressing of the words.
type Config struct {
	BaseAddress uint32 // address of the first word
	Stride      uint32 // address increment per word
}

// Opener opens a fresh reader positioned at the start of the stream.
// It allows a stream to be walked more than once.
type Opener func() (io.ReadCloser, error)

// FileOpener returns an Opener that opens the named file.
func FileOpener(name string) Opener {
	return func() (io.ReadCloser, error) {
		file, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("opening file %s: %w", name, err)
		}
		return file, nil
	}
}

// BytesOpener returns an Opener that serves the given buffer.
func BytesOpener(data []byte) Opener {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}

// Scanner reads words sequentially from a reader. Successive calls to Scan
// step through the words of the stream, the final incomplete word of a
// stream with an odd length is not returned but can be queried by Trailing.
type Scanner struct {
	reader  *bufio.Reader
	config  Config
	address uint32

	word     Word
	trailing []byte
	err      error
	done     bool
}

// NewScanner returns a new scanner to read words from r.
func NewScanner(r io.Reader, config Config) *Scanner {
	return &Scanner{
		reader:  bufio.NewReader(r),
		config:  config,
		address: config.BaseAddress,
	}
}

// Scan advances the scanner to the next word, which will then be available
// through the Word method. It returns false when the scan stops, either by
// reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	var buf [WordSize]byte
	n, err := io.ReadFull(s.reader, buf[:])
	switch {
	case err == nil:

	case errors.Is(err, io.EOF):
		s.done = true
		return false

	case errors.Is(err, io.ErrUnexpectedEOF):
		s.trailing = append([]byte(nil), buf[:n]...)
		s.done = true
		return false

	default:
		s.err = fmt.Errorf("reading word at address %03x: %w", s.address, err)
		s.done = true
		return false
	}

	s.word = Word{
		Address: s.address,
		Bytes:   buf,
	}
	s.address += s.config.Stride
	return true
}

// Word returns the most recent word read by a call to Scan.
func (s *Scanner) Word() Word {
	return s.word
}

// Err returns the first non-EOF error that was encountered by the scanner.
func (s *Scanner) Err() error {
	return s.err
}

// Trailing returns the bytes left over after the last complete word and the
// address they would have been assigned to. The returned slice is empty
// unless the stream ended in the middle of a word.
func (s *Scanner) Trailing() (uint32, []byte) {
	return s.address, s.trailing
}
