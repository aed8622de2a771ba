// Package disasm implements a linear CHIP-8 disassembler.
package disasm

import (
	"context"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/retroenv/chip8disasm/internal/arch/chip8"
	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/stream"
	"github.com/retroenv/chip8disasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Record is the disassembly of a single word.
type Record struct {
	Address     uint32
	Bytes       [stream.WordSize]byte
	Instruction chip8.Instruction
	Text        string
}

// Line converts the record to a listing line.
func (r Record) Line() writer.Line {
	return writer.Line{
		Address: r.Address,
		Bytes:   r.Bytes,
		Text:    r.Text,
	}
}

// Decode disassembles a single word. It has no side effects and can be
// called for independent words in any order.
func Decode(word stream.Word) Record {
	ins := chip8.DecodeBytes(word.Bytes[0], word.Bytes[1])
	return Record{
		Address:     word.Address,
		Bytes:       word.Bytes,
		Instruction: ins,
		Text:        ins.String(),
	}
}

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler
	stats   Statistics
}

// Statistics summarizes the records of the last walk over a stream.
type Statistics struct {
	Records      int
	Lines        int // listing lines written by Process
	Unrecognized int
	Jumps        int
	Calls        int
	Returns      int
	Skips        int

	unrecognizedWords set.Set[uint16]
}

// UnrecognizedWords returns the distinct unrecognized words in ascending order.
func (s Statistics) UnrecognizedWords() []uint16 {
	words := make([]uint16, 0, len(s.unrecognizedWords))
	for word := range s.unrecognizedWords {
		words = append(words, word)
	}
	slices.Sort(words)
	return words
}

func (s *Statistics) add(record Record) {
	s.Records++

	ins := record.Instruction
	switch {
	case !chip8.IsRecognized(ins):
		s.Unrecognized++
		s.unrecognizedWords.Add(uint16(record.Bytes[0])<<8 | uint16(record.Bytes[1]))
	case chip8.IsJump(ins):
		s.Jumps++
	case chip8.IsCall(ins):
		s.Calls++
	case chip8.IsReturn(ins):
		s.Returns++
	case chip8.IsSkip(ins):
		s.Skips++
	}
}

// New creates a new disassembler.
func New(logger *log.Logger, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
		stats:   newStatistics(),
	}
}

func newStatistics() Statistics {
	return Statistics{
		unrecognizedWords: set.New[uint16](),
	}
}

// Records returns the records of the stream in stream order. Every iteration
// opens the stream again and resets the statistics. Iteration stops at the
// first error, which is yielded as the final element. A trailing byte that
// does not form a complete word is skipped.
func (dis *Disasm) Records(ctx context.Context, open stream.Opener) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		dis.stats = newStatistics()

		reader, err := open()
		if err != nil {
			yield(Record{}, fmt.Errorf("opening stream: %w", err))
			return
		}
		defer func() { _ = reader.Close() }()

		scanner := stream.NewScanner(reader, stream.Config{
			BaseAddress: dis.options.BaseAddress,
			Stride:      dis.options.Stride,
		})

		for scanner.Scan() {
			if err := ctx.Err(); err != nil {
				yield(Record{}, err)
				return
			}

			record := Decode(scanner.Word())
			dis.stats.add(record)
			if !yield(record, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(Record{}, err)
			return
		}

		if address, trailing := scanner.Trailing(); len(trailing) > 0 {
			dis.logger.Warn("Ignoring incomplete trailing word",
				log.Hex("address", address),
				log.Hex("value", trailing[0]))
		}
	}
}

// Process disassembles the stream and writes one listing line per word.
func (dis *Disasm) Process(ctx context.Context, open stream.Opener, output io.Writer) error {
	w := writer.New(output)

	for record, err := range dis.Records(ctx, open) {
		if err != nil {
			return fmt.Errorf("disassembling: %w", err)
		}
		if err := w.WriteLine(record.Line()); err != nil {
			return err
		}
	}

	dis.stats.Lines = w.Lines()
	dis.logStatistics()
	return nil
}

// Statistics returns the statistics of the last walk over a stream.
func (dis *Disasm) Statistics() Statistics {
	return dis.stats
}

func (dis *Disasm) logStatistics() {
	stats := dis.stats
	dis.logger.Debug("Disassembly finished",
		log.Int("records", stats.Records),
		log.Int("lines", stats.Lines),
		log.Int("unrecognized", stats.Unrecognized),
		log.Int("jumps", stats.Jumps),
		log.Int("calls", stats.Calls),
		log.Int("returns", stats.Returns),
		log.Int("skips", stats.Skips))

	for _, word := range stats.UnrecognizedWords() {
		dis.logger.Debug("Unrecognized word", log.Hex("word", word))
	}
}
