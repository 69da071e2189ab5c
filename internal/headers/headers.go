package headers

import (
	"fmt"
	"io"
	"net/textproto"
	"sort"
	"strconv"
	"strings"
)

// Headers is a response header set. Keys are stored lowercase.
type Headers map[string]string

func NewHeaders() Headers { return Headers{} }

// ContentLength returns a header set holding only Content-Length.
func ContentLength(n int) Headers {
	h := NewHeaders()
	h.Override("content-length", strconv.Itoa(n))
	return h
}

func (h Headers) Override(name, value string) {
	name = strings.ToLower(name)
	h[name] = value
}

// WriteTo emits "Key: Value\r\n" for every header in sorted order, followed
// by the blank line that ends the header block.
func (h Headers) WriteTo(w io.Writer) (int64, error) {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var total int64
	for _, k := range keys {
		n, err := fmt.Fprintf(w, "%s: %s\r\n", textproto.CanonicalMIMEHeaderKey(k), h[k])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	n, err := io.WriteString(w, "\r\n")
	return total + int64(n), err
}
