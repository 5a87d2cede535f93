// Package host maps a virtual host name and URL path onto the document root.
package host

import (
	"errors"
	"fmt"
	"strings"

	"apex/internal/models"
)

const indexFile = "index.html"

type Resolver struct {
	root    string
	confine bool
	storage Storage
}

// NewResolver returns a resolver serving root/<hostname><path>. With confine
// set, hostnames and paths that could leave the host's directory are
// rejected before touching the filesystem.
func NewResolver(root string, confine bool, storage Storage) *Resolver {
	if storage == nil {
		storage = OS()
	}
	return &Resolver{
		root:    strings.TrimSuffix(root, "/"),
		confine: confine,
		storage: storage,
	}
}

// Resolve decides the outcome for req. A request without a Host header is
// not found.
func (r *Resolver) Resolve(req *models.Request) models.Outcome {
	hostname, ok := req.Host()
	if !ok {
		return models.Outcome{Kind: models.NotFound}
	}
	return r.ResolvePath(hostname, req.Path)
}

func (r *Resolver) ResolvePath(hostname, urlPath string) models.Outcome {
	if r.confine {
		if kind, ok := confined(hostname, urlPath); !ok {
			return models.Outcome{Kind: kind}
		}
	}

	candidate := r.root + "/" + hostname + urlPath
	trailing := strings.HasSuffix(urlPath, "/")

	entry := Probe(r.storage, candidate)
	switch entry.Kind {
	case EntryNotFound:
		return models.Outcome{Kind: models.NotFound}

	case EntryNotADirectory:
		// /file.txt/ where file.txt is a file
		if trailing {
			return redirect(hostname, strings.TrimSuffix(urlPath, "/"))
		}
		return models.Outcome{Kind: models.NotFound}

	case EntryDirectory:
		if !trailing {
			return r.redirectToIndex(hostname, urlPath, candidate)
		}
		return r.read(candidate + indexFile)

	case EntryFile:
		if trailing {
			return serverError(fmt.Errorf("%s: path ending in / resolved to a file", candidate))
		}
		return r.read(candidate)
	}

	return serverError(entry.Err)
}

// redirectToIndex sends /dir to /dir/ when the directory has an index.
// Directories without one are never listed.
func (r *Resolver) redirectToIndex(hostname, urlPath, dir string) models.Outcome {
	entry := Probe(r.storage, dir+"/"+indexFile)
	switch entry.Kind {
	case EntryFile:
		return redirect(hostname, urlPath+"/")
	case EntryDirectory, EntryNotFound:
		return models.Outcome{Kind: models.NotFound}
	case EntryError:
		if errors.Is(entry.Err, ErrNotRegular) {
			return models.Outcome{Kind: models.NotFound}
		}
	}
	return serverError(entry.Err)
}

func (r *Resolver) read(name string) models.Outcome {
	content, err := r.storage.ReadFile(name)
	if err != nil {
		// vanished between stat and read
		if e := classify(err); e.Kind == EntryNotFound {
			return models.Outcome{Kind: models.NotFound}
		}
		return serverError(fmt.Errorf("read %s: %w", name, err))
	}
	return models.Outcome{Kind: models.Serve, Body: content}
}

func redirect(hostname, location string) models.Outcome {
	return models.Outcome{Kind: models.RedirectPermanent, Host: hostname, Location: location}
}

func serverError(err error) models.Outcome {
	return models.Outcome{Kind: models.ServerError, Err: err}
}
