package accesslog

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"apex/internal/models"
)

// Logger writes "<client> GET <host><path>" lines. In verbose mode the
// request headers are appended.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
}

func New(w io.Writer, verbose bool) *Logger {
	return &Logger{w: w, verbose: verbose}
}

func (l *Logger) Log(rec models.Record) error {
	if l == nil || l.w == nil {
		return nil
	}

	var b strings.Builder
	b.WriteString(rec.Client)
	b.WriteByte(' ')
	b.WriteString(rec.Method)
	b.WriteByte(' ')
	b.WriteString(rec.Host)
	b.WriteString(rec.Path)
	if l.verbose {
		b.WriteByte(' ')
		writeHeaders(&b, rec.Headers)
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := io.WriteString(l.w, b.String())
	return err
}

func writeHeaders(b *strings.Builder, headers models.Headers) {
	if len(headers) == 0 {
		b.WriteString("{}")
		return
	}

	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("{\n")
	for _, name := range names {
		b.WriteString("    ")
		b.WriteString(strconv.Quote(name))
		b.WriteString(": ")
		b.WriteString(strconv.Quote(headers[name]))
		b.WriteString(",\n")
	}
	b.WriteString("}")
}
