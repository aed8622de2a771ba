package fileprocessor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

func TestProcessFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.Program{
		Parameters: options.Parameters{Input: createTempFile(t, []byte{0x00, 0xEE, 0x12, 0x34, 0x51, 0x23})},
	}

	var buf bytes.Buffer
	err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler(), &buf)
	assert.NoError(t, err)
	assert.Equal(t, "200 00ee: ret\n202 1234: jmp_addr(234)\n204 5123: INVALID\n", buf.String())
}

func TestProcessFile_OddLength(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.Program{
		Parameters: options.Parameters{Input: createTempFile(t, []byte{0x6A, 0x15, 0xFF})},
	}

	var buf bytes.Buffer
	err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler(), &buf)
	assert.NoError(t, err)
	assert.Equal(t, "200 6a15: ld_vx_byte(a, 15)\n", buf.String())
}

func TestProcessFile_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.ch8")},
		{"directory", t.TempDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := log.NewTestLogger(t)
			opts := options.Program{
				Parameters: options.Parameters{Input: tt.input},
			}

			var buf bytes.Buffer
			err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler(), &buf)
			assert.ErrorContains(t, err, "opening file")
			assert.Equal(t, "", buf.String())
		})
	}
}

func TestProcessFile_Cancelled(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.Program{
		Parameters: options.Parameters{Input: createTempFile(t, []byte{0x00, 0xEE})},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := ProcessFile(ctx, logger, opts, options.NewDisassembler(), &buf)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)

	PrintBanner(logger, options.Program{}, "1.0.0", "abcdef0123", "2026-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "dev", "", "")
}
