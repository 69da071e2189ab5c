package request

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// RootRequestLine is the only request line answered with 200.
const RootRequestLine = "GET / HTTP/1.1"

// Class is the outcome of classifying a request line.
type Class int

const (
	NotFound Class = iota
	Found
)

var ClassName = map[Class]string{
	NotFound: "not_found",
	Found:    "found",
}

func (c Class) String() string {
	if name, ok := ClassName[c]; ok {
		return name
	}
	return fmt.Sprintf("class(%d)", int(c))
}

var (
	// ErrLineNotTerminated is returned when the stream ends before '\n'.
	ErrLineNotTerminated = fmt.Errorf("request line not terminated: %w", io.ErrUnexpectedEOF)
	ErrInvalidEncoding   = errors.New("request line is not valid utf-8")
)

// ReadLine reads from r up to and including the first '\n'.
// There is no length cap and no deadline: it blocks until the terminator,
// EOF or a read error arrives. Bytes after the terminator are not returned.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrLineNotTerminated
		}
		return "", fmt.Errorf("reading request line: %w", err)
	}

	if !utf8.ValidString(line) {
		return "", ErrInvalidEncoding
	}

	return line, nil
}

// Trim removes surrounding whitespace, CR and LF included.
func Trim(line string) string {
	return strings.TrimSpace(line)
}

// Classify compares the trimmed line byte-for-byte against RootRequestLine.
func Classify(line string) Class {
	if Trim(line) == RootRequestLine {
		return Found
	}
	return NotFound
}
