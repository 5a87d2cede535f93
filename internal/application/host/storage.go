package host

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// EntryKind classifies what a stat of a candidate path found.
type EntryKind int

const (
	EntryFile EntryKind = iota
	EntryDirectory
	EntryNotFound
	EntryNotADirectory
	EntryError
)

func (k EntryKind) String() string {
	switch k {
	case EntryFile:
		return "file"
	case EntryDirectory:
		return "directory"
	case EntryNotFound:
		return "not found"
	case EntryNotADirectory:
		return "not a directory"
	}
	return "error"
}

// Entry is the tagged result of probing a path. Err is set for EntryError.
type Entry struct {
	Kind EntryKind
	Err  error
}

// ErrNotRegular is the cause of EntryError for entries that are neither a
// directory nor a regular file.
var ErrNotRegular = errors.New("not a regular file")

// Storage is the read-only view of the document root.
type Storage interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

type osStorage struct{}

func (osStorage) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (osStorage) ReadFile(name string) ([]byte, error)  { return os.ReadFile(name) }

// OS returns the Storage backed by the local filesystem. Paths are passed to
// the OS untouched, so a trailing slash is significant.
func OS() Storage {
	return osStorage{}
}

// Probe stats name and classifies the result. Anything that is neither a
// directory nor a regular file (devices, sockets) is reported as an error.
func Probe(s Storage, name string) Entry {
	info, err := s.Stat(name)
	if err != nil {
		return classify(err)
	}

	switch {
	case info.IsDir():
		return Entry{Kind: EntryDirectory}
	case info.Mode().IsRegular():
		return Entry{Kind: EntryFile}
	}
	return Entry{Kind: EntryError, Err: &fs.PathError{Op: "stat", Path: name, Err: ErrNotRegular}}
}

func classify(err error) Entry {
	switch {
	case errors.Is(err, syscall.ENOTDIR):
		return Entry{Kind: EntryNotADirectory, Err: err}
	case errors.Is(err, fs.ErrNotExist):
		return Entry{Kind: EntryNotFound, Err: err}
	}
	return Entry{Kind: EntryError, Err: err}
}
