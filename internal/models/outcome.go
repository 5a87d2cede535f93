package models

// Kind tells the response composer what to render.
type Kind int

const (
	Serve Kind = iota
	RedirectPermanent
	BadRequest
	NotFound
	ServerError
)

func (k Kind) String() string {
	switch k {
	case Serve:
		return "serve"
	case RedirectPermanent:
		return "redirect"
	case BadRequest:
		return "bad_request"
	case NotFound:
		return "not_found"
	case ServerError:
		return "server_error"
	}
	return "unknown"
}

// Outcome is the result of resolving one request against the document root.
type Outcome struct {
	Kind Kind

	// Body holds the file content for Serve.
	Body []byte

	// Host and Location are set for RedirectPermanent.
	Host     string
	Location string

	// Err is the cause of a ServerError.
	Err error
}
