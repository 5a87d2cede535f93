package response

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// Pages loads the optional custom error documents from the document root.
// They are read on every use.
type Pages struct {
	root string
	read func(string) ([]byte, error)
}

func NewPages(root string) *Pages {
	return &Pages{root: root, read: os.ReadFile}
}

// Load returns the page for status (404.html for 404). A missing page is
// reported as (nil, nil).
func (p *Pages) Load(status int) ([]byte, error) {
	if p == nil {
		return nil, nil
	}

	content, err := p.read(filepath.Join(p.root, strconv.Itoa(status)+".html"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return content, nil
}
