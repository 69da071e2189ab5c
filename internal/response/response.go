package response

import (
	"bytes"
	"fmt"
	"hellotcp/internal/headers"
	"hellotcp/internal/request"
	"io"
)

type StatusCode int

const (
	OK        StatusCode = 200
	NOT_FOUND StatusCode = 404
)

var StatusCodeName = map[StatusCode]string{
	OK:        "OK",
	NOT_FOUND: "Not Found",
}

const httpVersion = "HTTP/1.1"

const (
	FoundBody    = "<html><head><title>200 Ok</title></head><body><h1>Hello, World!</h1></body></html>"
	NotFoundBody = "<html><head><title>404 Not Found</title></head><body><h1>404 Not Found</h1></body></html>"
)

// Response is the (status, body) pair chosen for one request.
type Response struct {
	Status StatusCode
	Body   string
}

var (
	found    = Response{Status: OK, Body: FoundBody}
	notFound = Response{Status: NOT_FOUND, Body: NotFoundBody}
)

// For maps a request classification to its fixed response.
func For(class request.Class) Response {
	if class == request.Found {
		return found
	}
	return notFound
}

// Writer stages a response in memory so it reaches the connection
// in a single Write on Flush.
type Writer struct {
	writer io.Writer
	buf    bytes.Buffer
}

func NewWriter(conn io.Writer) *Writer {
	return &Writer{writer: conn}
}

func (w *Writer) WriteStatusLine(statusCode StatusCode) error {
	_, err := fmt.Fprintf(&w.buf, "%s %d %s\r\n", httpVersion, int(statusCode), StatusCodeName[statusCode])
	return err
}

func (w *Writer) WriteHeaders(h headers.Headers) error {
	_, err := h.WriteTo(&w.buf)
	return err
}

func (w *Writer) WriteBody(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Flush writes everything staged so far in one call and resets the buffer.
func (w *Writer) Flush() error {
	defer w.buf.Reset()

	n, err := w.writer.Write(w.buf.Bytes())
	if err != nil {
		return err
	}
	if n < w.buf.Len() {
		return io.ErrShortWrite
	}
	return nil
}

// Write serializes resp as
//
//	HTTP/1.1 <code> <reason>\r\nContent-Length: <n>\r\n\r\n<body>
//
// with one Write on w.
func Write(w io.Writer, resp Response) error {
	rw := NewWriter(w)
	if err := rw.WriteStatusLine(resp.Status); err != nil {
		return err
	}
	if err := rw.WriteHeaders(headers.ContentLength(len(resp.Body))); err != nil {
		return err
	}
	if _, err := rw.WriteBody([]byte(resp.Body)); err != nil {
		return err
	}
	return rw.Flush()
}
