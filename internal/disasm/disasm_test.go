package disasm

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8disasm/internal/arch/chip8"
	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/stream"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testCode = []byte{
	0x00, 0xEE, // ret
	0x12, 0x34, // jmp_addr(234)
	0x22, 0x08, // call_addr(208)
	0x3A, 0x12, // se_vx_byte(a, 12)
	0x4B, 0x05, // sne_vx_byte(b, 05)
	0x6A, 0x15, // ld_vx_byte(a, 15)
	0x7C, 0xFF, // add_vx_byte(c, ff)
	0x81, 0x20, // ld_vx_vy(1, 2)
	0x8D, 0xE2, // and_vx_vy(d, e)
	0x83, 0x45, // sub_vx_vy(3, 4)
	0xA2, 0xF0, // ld_i_addr(2f0)
	0xC3, 0x0F, // rnd_vx_byte(3, 0f)
	0xD1, 0x25, // drw_vx_vy_nibble(1, 2, 5)
	0xF5, 0x1E, // add_i_vx(5)
	0x51, 0x23, // unsupported class
	0x81, 0x21, // unsupported sub-opcode
	0xF1, 0x07, // unsupported sub-opcode
	0x51, 0x23, // repeated unsupported word
}

var expectedListing = `200 00ee: ret
202 1234: jmp_addr(234)
204 2208: call_addr(208)
206 3a12: se_vx_byte(a, 12)
208 4b05: sne_vx_byte(b, 05)
20a 6a15: ld_vx_byte(a, 15)
20c 7cff: add_vx_byte(c, ff)
20e 8120: ld_vx_vy(1, 2)
210 8de2: and_vx_vy(d, e)
212 8345: sub_vx_vy(3, 4)
214 a2f0: ld_i_addr(2f0)
216 c30f: rnd_vx_byte(3, 0f)
218 d125: drw_vx_vy_nibble(1, 2, 5)
21a f51e: add_i_vx(5)
21c 5123: INVALID
21e 8121: INVALID
220 f107: INVALID
222 5123: INVALID
`

func newTestDisasm(t *testing.T) *Disasm {
	t.Helper()
	return New(log.NewTestLogger(t), options.NewDisassembler())
}

func TestProcess(t *testing.T) {
	dis := newTestDisasm(t)

	var buffer bytes.Buffer
	err := dis.Process(context.Background(), stream.BytesOpener(testCode), &buffer)
	assert.NoError(t, err)
	assert.Equal(t, expectedListing, buffer.String())

	stats := dis.Statistics()
	assert.Equal(t, 18, stats.Records)
	assert.Equal(t, 18, stats.Lines)
	assert.Equal(t, 4, stats.Unrecognized)
	assert.Equal(t, 1, stats.Jumps)
	assert.Equal(t, 1, stats.Calls)
	assert.Equal(t, 1, stats.Returns)
	assert.Equal(t, 2, stats.Skips)
	assert.Equal(t, []uint16{0x5123, 0x8121, 0xF107}, stats.UnrecognizedWords())
}

func TestProcess_TwoWordFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(name, []byte{0x00, 0xEE, 0x12, 0x34}, 0600))

	dis := newTestDisasm(t)
	var records []Record
	for record, err := range dis.Records(context.Background(), stream.FileOpener(name)) {
		assert.NoError(t, err)
		records = append(records, record)
	}

	assert.Len(t, records, 2)
	assert.Equal(t, uint32(0x200), records[0].Address)
	assert.Equal(t, "ret", records[0].Text)
	assert.Equal(t, uint32(0x202), records[1].Address)
	assert.Equal(t, "jmp_addr(234)", records[1].Text)
	assert.Equal(t, chip8.Instruction(chip8.Jump{Address: 0x234}), records[1].Instruction)
}

func TestProcess_TrailingByte(t *testing.T) {
	dis := newTestDisasm(t)

	var buffer bytes.Buffer
	err := dis.Process(context.Background(), stream.BytesOpener([]byte{0x00, 0xEE, 0x12}), &buffer)
	assert.NoError(t, err)
	assert.Equal(t, "200 00ee: ret\n", buffer.String())
	assert.Equal(t, 1, dis.Statistics().Records)
	assert.Equal(t, 1, dis.Statistics().Lines)
}

func TestProcess_Empty(t *testing.T) {
	dis := newTestDisasm(t)

	var buffer bytes.Buffer
	err := dis.Process(context.Background(), stream.BytesOpener(nil), &buffer)
	assert.NoError(t, err)
	assert.Equal(t, "", buffer.String())
}

func TestProcess_CustomAddressing(t *testing.T) {
	dis := New(log.NewTestLogger(t), options.Disassembler{BaseAddress: 0x600, Stride: 2})

	var buffer bytes.Buffer
	err := dis.Process(context.Background(), stream.BytesOpener([]byte{0x00, 0xEE, 0x12, 0x34}), &buffer)
	assert.NoError(t, err)
	assert.Equal(t, "600 00ee: ret\n602 1234: jmp_addr(234)\n", buffer.String())
}

func TestProcess_OpenError(t *testing.T) {
	dis := newTestDisasm(t)
	open := stream.FileOpener(filepath.Join(t.TempDir(), "missing.ch8"))

	var buffer bytes.Buffer
	err := dis.Process(context.Background(), open, &buffer)
	assert.ErrorContains(t, err, "opening stream")
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, "", buffer.String())
}

func TestProcess_Cancelled(t *testing.T) {
	dis := newTestDisasm(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buffer bytes.Buffer
	err := dis.Process(ctx, stream.BytesOpener(testCode), &buffer)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, "", buffer.String())
}

func TestProcess_WriteError(t *testing.T) {
	dis := newTestDisasm(t)

	err := dis.Process(context.Background(), stream.BytesOpener(testCode), failingWriter{})
	assert.True(t, errors.Is(err, io.ErrShortWrite))
}

func TestRecords_Restartable(t *testing.T) {
	dis := newTestDisasm(t)
	records := dis.Records(context.Background(), stream.BytesOpener(testCode))

	for range 2 {
		count := 0
		for _, err := range records {
			assert.NoError(t, err)
			count++
		}
		assert.Equal(t, 18, count)
		assert.Equal(t, 18, dis.Statistics().Records)
	}
}

func TestRecords_StopEarly(t *testing.T) {
	dis := newTestDisasm(t)

	count := 0
	for _, err := range dis.Records(context.Background(), stream.BytesOpener(testCode)) {
		assert.NoError(t, err)
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestDecode(t *testing.T) {
	record := Decode(stream.Word{Address: 0x204, Bytes: [2]byte{0x81, 0x20}})

	assert.Equal(t, uint32(0x204), record.Address)
	assert.Equal(t, [2]byte{0x81, 0x20}, record.Bytes)
	assert.Equal(t, chip8.Instruction(chip8.LoadRegister{Destination: 1, Source: 2}), record.Instruction)
	assert.Equal(t, "ld_vx_vy(1, 2)", record.Text)
	assert.Equal(t, "204 8120: ld_vx_vy(1, 2)", record.Line().String())
}

func TestDecode_AddressSequence(t *testing.T) {
	data := make([]byte, 64)
	dis := newTestDisasm(t)

	i := 0
	for record, err := range dis.Records(context.Background(), stream.BytesOpener(data)) {
		assert.NoError(t, err)
		assert.Equal(t, uint32(0x200+2*i), record.Address)
		i++
	}
	assert.Equal(t, 32, i)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrShortWrite
}
