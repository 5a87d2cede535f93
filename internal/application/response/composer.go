package response

import (
	"log/slog"

	"apex/internal/models"
)

const textPlain = "text/plain"

// Composer turns resolution outcomes into responses.
type Composer struct {
	pages  *Pages
	logger *slog.Logger
}

func NewComposer(pages *Pages, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{pages: pages, logger: logger}
}

func (c *Composer) Compose(version models.Version, out models.Outcome) *Response {
	switch out.Kind {
	case models.Serve:
		return New(version, 200, out.Body)
	case models.RedirectPermanent:
		return Redirect(version, out.Host, out.Location)
	case models.BadRequest:
		return BadRequest(version)
	case models.NotFound:
		return c.errorPage(version, 404)
	}
	return c.errorPage(version, 500)
}

// ServerError is the response for failures outside of resolution.
func (c *Composer) ServerError(version models.Version) *Response {
	return c.errorPage(version, 500)
}

// errorPage serves <root>/<status>.html if it exists and a plain-text page
// otherwise.
func (c *Composer) errorPage(version models.Version, status int) *Response {
	page, err := c.pages.Load(status)
	if err != nil {
		c.logger.Error("failed to load error page", "status", status, "error", err)
	}
	if page != nil {
		return New(version, status, page)
	}
	return Text(version, status)
}

// Text is a response whose body is its own status text.
func Text(version models.Version, status int) *Response {
	r := New(version, status, nil)
	r.Body = []byte(r.StatusText())
	return r.AddHeader("Content-Type", textPlain)
}

// BadRequest answers a request that could not be parsed. Before the request
// line is understood the version is unknown and HTTP/1.0 is used.
func BadRequest(version models.Version) *Response {
	if version == "" {
		version = models.HTTP10
	}
	return Text(version, 400)
}

func Redirect(version models.Version, host, location string) *Response {
	r := New(version, 301, nil)
	r.Body = []byte(r.StatusText() + "\r\nhttp://" + host + location)
	return r.AddHeader("Content-Type", textPlain).AddHeader("Location", location)
}
