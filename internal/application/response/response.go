package response

import (
	"bufio"
	"io"
	"strconv"

	"apex/internal/models"
)

const ServerName = "apex"

type Header struct {
	Name  string
	Value string
}

// Response is a complete response. Content-Length is not stored; it is
// taken from Body when the response is written.
type Response struct {
	Version models.Version
	Status  int
	Phrase  string
	Headers []Header
	Body    []byte
}

var phrases = map[int]string{
	200: "OK",
	301: "Moved Permanently",
	400: "Bad Request",
	404: "Not Found",
	500: "Internal Server Error",
}

func New(version models.Version, status int, body []byte) *Response {
	return &Response{
		Version: version,
		Status:  status,
		Phrase:  phrases[status],
		Body:    body,
	}
}

func (r *Response) StatusText() string {
	return strconv.Itoa(r.Status) + " " + r.Phrase
}

func (r *Response) AddHeader(name, value string) *Response {
	r.Headers = append(r.Headers, Header{Name: name, Value: value})
	return r
}

// WriteTo writes status line, Server, Content-Length, the extra headers in
// order, a blank line and the body.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	bw.WriteString(string(r.Version) + " " + r.StatusText() + "\r\n")
	bw.WriteString("Server: " + ServerName + "\r\n")
	bw.WriteString("Content-Length: " + strconv.Itoa(len(r.Body)) + "\r\n")
	for _, h := range r.Headers {
		bw.WriteString(h.Name + ": " + h.Value + "\r\n")
	}
	bw.WriteString("\r\n")
	bw.Write(r.Body)

	err := bw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
