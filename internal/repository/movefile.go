package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rocketscienceinc/connectz/internal/apperror"
)

var errIsDirectory = errors.New("path is a directory")

// LineSource yields the raw lines of a move list without their terminators.
type LineSource interface {
	Next() (string, bool)
	Line() int
	Err() error
}

// MoveFile reads a move list line by line.
type MoveFile struct {
	reader *bufio.Reader
	closer io.Closer

	line int
	done bool
	err  error
}

// OpenMoveFile opens the move list at path. Any failure to open it wraps
// apperror.ErrSourceUnavailable.
func OpenMoveFile(path string) (*MoveFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrSourceUnavailable, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s: %w", apperror.ErrSourceUnavailable, path, errIsDirectory)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrSourceUnavailable, err)
	}

	moveFile := NewMoveReader(file)
	moveFile.closer = file

	return moveFile, nil
}

// NewMoveReader reads a move list from r. Close does not close r.
func NewMoveReader(r io.Reader) *MoveFile {
	return &MoveFile{
		reader: bufio.NewReader(r),
	}
}

// Next returns the next line with its "\n" or "\r\n" terminator removed. It
// returns false at the end of input or after a read error, see Err.
func (that *MoveFile) Next() (string, bool) {
	if that.done || that.err != nil {
		return "", false
	}

	line, err := that.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			that.err = err
			return "", false
		}

		that.done = true
		if line == "" {
			return "", false
		}
	}

	that.line++

	return trimLineEnd(line), true
}

// Line returns the 1-based number of the line last returned by Next.
func (that *MoveFile) Line() int {
	return that.line
}

// Err returns the read error that stopped Next, wrapping
// apperror.ErrSourceUnavailable. It is nil at a clean end of input.
func (that *MoveFile) Err() error {
	if that.err == nil {
		return nil
	}

	return fmt.Errorf("%w: after line %d: %w", apperror.ErrSourceUnavailable, that.line, that.err)
}

// Close closes the file opened by OpenMoveFile.
func (that *MoveFile) Close() error {
	if that.closer == nil {
		return nil
	}

	if err := that.closer.Close(); err != nil {
		return fmt.Errorf("failed to close move file: %w", err)
	}

	return nil
}

func trimLineEnd(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
