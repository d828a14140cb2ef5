package persistence

import (
	"bytes"
	"io"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadWords(t *testing.T) {
	values := []uint{0, 1, 42, math.MaxUint, math.MaxUint >> 1}

	var buf bytes.Buffer
	ww := NewWordWriter(&buf)
	require.NoError(t, ww.WriteWords(values))
	require.Equal(t, len(values)*WordSize, buf.Len())

	wr := NewWordReader(&buf)
	got := make([]uint, len(values))
	require.NoError(t, wr.ReadWords(got))
	assert.Equal(t, values, got)
}

func TestReadWordShortRead(t *testing.T) {
	var buf bytes.Buffer
	ww := NewWordWriter(&buf)
	require.NoError(t, ww.WriteWord(7))

	// Chop the last byte off the word.
	truncated := bytes.NewReader(buf.Bytes()[:WordSize-1])
	wr := NewWordReader(truncated)

	_, err := wr.ReadWord()
	require.Error(t, err)

	var shortRead *ShortReadError
	require.ErrorAs(t, err, &shortRead)
	assert.Equal(t, WordSize, shortRead.Requested)
	assert.Equal(t, WordSize-1, shortRead.Read)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadWordEmptySource(t *testing.T) {
	wr := NewWordReader(bytes.NewReader(nil))
	_, err := wr.ReadWord()

	var shortRead *ShortReadError
	require.ErrorAs(t, err, &shortRead)
	assert.Equal(t, 0, shortRead.Read)
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return w.n, io.ErrShortWrite
}

func TestWriteWordFailure(t *testing.T) {
	ww := NewWordWriter(&failingWriter{n: 3})
	err := ww.WriteWord(1)
	require.Error(t, err)

	var shortWrite *ShortWriteError
	require.ErrorAs(t, err, &shortWrite)
	assert.Equal(t, WordSize, shortWrite.Requested)
	assert.Equal(t, 3, shortWrite.Written)
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.bin")
	values := []uint{3, 1, 4, 1, 5}

	err := SaveToFile(path, func(w io.Writer) error {
		return NewWordWriter(w).WriteWords(values)
	})
	require.NoError(t, err)

	got := make([]uint, len(values))
	err = LoadFromFile(path, func(r io.Reader) error {
		return NewWordReader(r).ReadWords(got)
	})
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestSaveToFileReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.bin")

	for _, value := range []uint{1, 2} {
		err := SaveToFile(path, func(w io.Writer) error {
			return NewWordWriter(w).WriteWord(value)
		})
		require.NoError(t, err)
	}

	var got uint
	err := LoadFromFile(path, func(r io.Reader) error {
		word, err := NewWordReader(r).ReadWord()
		got = word
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), got)
}

func TestSaveToFileWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.bin")

	err := SaveToFile(path, func(io.Writer) error {
		return io.ErrShortWrite
	})
	require.Error(t, err)

	// A failed save must not leave the target behind.
	err = LoadFromFile(path, func(io.Reader) error { return nil })
	assert.Error(t, err)
}
