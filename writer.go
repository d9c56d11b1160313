package records

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Writer streams records to a JSONL destination one line at a time,
// without accumulating them in memory. It is safe for concurrent use.
type Writer struct {
	mu        sync.Mutex
	output    io.Writer
	count     int
	closeFunc func() error
}

// NewWriter creates a Writer that emits records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{output: w}
}

// NewFileWriter creates a Writer backed by a new file at path,
// creating parent directories and truncating any existing file. The
// caller must call Close when done.
func NewFileWriter(path string) (*Writer, error) {
	return newFileWriter(path, os.O_TRUNC)
}

// NewAppendFileWriter creates a Writer that appends to the file at
// path, creating it and its parent directories if absent. The caller
// must call Close when done.
func NewAppendFileWriter(path string) (*Writer, error) {
	return newFileWriter(path, os.O_APPEND)
}

func newFileWriter(path string, mode int) (*Writer, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|mode, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}

	return &Writer{
		output:    file,
		closeFunc: file.Close,
	}, nil
}

// Write emits a single record as one compact JSON object line. The
// line goes out in a single call, so lines from concurrent writers on
// the same file cannot interleave.
func (w *Writer) Write(record interface{}) error {
	line, err := encodeRecordLine(record)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.output.Write(line); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying file if the Writer owns one.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}
