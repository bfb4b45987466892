package fileutils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// RecordScanner reads fixed-size records from a stream. Scanning stops at
// end of input or at the first incomplete record; the bytes of an incomplete
// record are counted in Trailing and otherwise dropped.
type RecordScanner struct {
	r        *bufio.Reader
	buf      []byte
	index    int
	trailing int
	err      error
	done     bool
}

func NewRecordScanner(r io.Reader, size int) *RecordScanner {
	if size <= 0 {
		panic(fmt.Sprintf("fileutils: invalid record size %d", size))
	}
	return &RecordScanner{
		r:   bufio.NewReader(r),
		buf: make([]byte, size),
	}
}

// Scan advances to the next complete record.
func (s *RecordScanner) Scan() bool {
	if s.done {
		return false
	}

	n, err := io.ReadFull(s.r, s.buf)
	switch {
	case err == nil:
		s.index++
		return true
	case errors.Is(err, io.EOF):
	case errors.Is(err, io.ErrUnexpectedEOF):
		s.trailing = n
	default:
		s.err = fmt.Errorf("failed to read record %d: %w", s.index+1, err)
	}

	s.done = true
	return false
}

// Record returns the current record. The slice is reused by the next Scan.
func (s *RecordScanner) Record() []byte {
	return s.buf
}

// Index returns the 1-based number of the current record.
func (s *RecordScanner) Index() int {
	return s.index
}

// Trailing returns the size of the incomplete record that ended the scan.
func (s *RecordScanner) Trailing() int {
	return s.trailing
}

// Err returns the first read error other than end of input.
func (s *RecordScanner) Err() error {
	return s.err
}
