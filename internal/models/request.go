package models

type Version string

const (
	HTTP10 Version = "HTTP/1.0"
	HTTP11 Version = "HTTP/1.1"
)

// Headers maps lowercased header names to their value. Later duplicates
// overwrite earlier ones.
type Headers map[string]string

// Request is a parsed GET request. It is built once per connection and not
// modified afterwards.
type Request struct {
	Method  string
	Path    string
	Version Version
	Headers Headers
}

func (r *Request) Host() (string, bool) {
	host, ok := r.Headers["host"]
	return host, ok
}
