package request

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"apex/internal/models"
)

const (
	methodGET    = "GET"
	methodPrefix = methodGET + " "

	// DefaultMaxHeaderBytes bounds the request line plus headers when no
	// limit is configured.
	DefaultMaxHeaderBytes = 1 << 20
)

// Read parses a request line and its header block from r, reading at most
// maxHeaderBytes bytes (DefaultMaxHeaderBytes when not positive). When the
// header block is bad the returned request still carries the parsed request
// line, so the caller can answer in the client's protocol version.
func Read(r *bufio.Reader, maxHeaderBytes int) (*models.Request, error) {
	if maxHeaderBytes <= 0 {
		maxHeaderBytes = DefaultMaxHeaderBytes
	}
	lr := &lineReader{r: r, left: maxHeaderBytes}

	line, err := lr.readLine()
	if err != nil {
		if IsProtocolError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrNoRequest, err)
	}

	req, err := ParseRequestLine(line)
	if err != nil {
		return nil, err
	}

	headers, err := lr.readHeaders()
	if err != nil {
		return req, err
	}
	req.Headers = headers

	return req, nil
}

// ParseRequestLine splits "GET <path> HTTP/1.x" into its parts. The path is
// kept verbatim.
func ParseRequestLine(line string) (*models.Request, error) {
	if !strings.HasPrefix(line, methodPrefix) {
		return nil, &ProtocolError{Err: ErrMethodNotSupported, Line: line}
	}

	var version models.Version
	switch {
	case strings.HasSuffix(line, " "+string(models.HTTP10)):
		version = models.HTTP10
	case strings.HasSuffix(line, " "+string(models.HTTP11)):
		version = models.HTTP11
	default:
		return nil, &ProtocolError{Err: ErrUnsupportedVersion, Line: line}
	}

	end := len(line) - len(version) - 1
	if end < len(methodPrefix) {
		// "GET HTTP/1.1": prefix and suffix share the space
		return nil, &ProtocolError{Err: ErrUnsupportedVersion, Line: line}
	}

	return &models.Request{
		Method:  methodGET,
		Path:    line[len(methodPrefix):end],
		Version: version,
		Headers: models.Headers{},
	}, nil
}

// ParseHeaderLine returns the lowercased name and the value with at most one
// leading space removed.
func ParseHeaderLine(line string) (string, string, error) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return "", "", &ProtocolError{Err: ErrMalformedHeaderLine, Line: line}
	}

	name := strings.ToLower(line[:colon])
	value := strings.TrimPrefix(line[colon+1:], " ")

	return name, value, nil
}

// lineReader hands out lines until its byte budget is spent.
type lineReader struct {
	r    *bufio.Reader
	left int
}

// readHeaders consumes header lines up to and including the blank line.
func (lr *lineReader) readHeaders() (models.Headers, error) {
	headers := make(models.Headers)
	for {
		line, err := lr.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, &ProtocolError{Err: ErrTruncatedRequest}
			}
			if IsProtocolError(err) {
				return nil, err
			}
			return nil, fmt.Errorf("read header: %w", err)
		}
		if line == "" {
			return headers, nil
		}

		name, value, err := ParseHeaderLine(line)
		if err != nil {
			return nil, err
		}
		headers[name] = value
	}
}

// similar to readLineSlice() in net/textproto/reader.go, but a final line
// without terminator is still returned
func (lr *lineReader) readLine() (string, error) {
	var line []byte
	for {
		chunk, err := lr.r.ReadSlice('\n')
		lr.left -= len(chunk)
		if lr.left < 0 {
			return "", &ProtocolError{Err: ErrHeaderTooLarge}
		}
		line = append(line, chunk...)

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				return strings.TrimSuffix(string(line), "\r"), nil
			}
			return "", err
		}
		break
	}

	line = line[:len(line)-1]
	return strings.TrimSuffix(string(line), "\r"), nil
}
