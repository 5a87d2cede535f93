package site

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"net"

	"apex/internal/application/accesslog"
	"apex/internal/application/client"
	"apex/internal/application/host"
	"apex/internal/application/request"
	"apex/internal/application/response"
	"apex/internal/models"
	"apex/internal/models/global"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Handler answers exactly one request per connection and closes it.
type Handler struct {
	Resolver       *host.Resolver
	Composer       *response.Composer
	Access         *accesslog.Logger
	Logger         *slog.Logger
	MaxHeaderBytes int
}

func NewSiteHandler(logger *slog.Logger, settings *global.Settings, access *accesslog.Logger) *Handler {
	root := settings.Server.DocumentRoot

	return &Handler{
		Resolver:       host.NewResolver(root, settings.Server.Confined(), host.OS()),
		Composer:       response.NewComposer(response.NewPages(root), logger),
		Access:         access,
		Logger:         logger,
		MaxHeaderBytes: settings.Server.Limits.MaxHeaderBytes,
	}
}

// ServeConn reads the request from conn, writes the response and closes
// conn. Any failure, including a panic, ends in a best-effort 500.
func (h *Handler) ServeConn(conn net.Conn) {
	defer conn.Close()

	logger := h.Logger.With("request_id", uuid.NewString())

	var (
		version models.Version
		written bool
	)
	defer func() {
		if p := recover(); p != nil {
			logger.Error("panic while handling connection", "panic", p)
			if !written {
				h.write(logger, conn, h.Composer.ServerError(version))
			}
		}
	}()

	resp := h.handle(conn, logger, &version)
	if resp == nil {
		return
	}
	written = true
	h.write(logger, conn, resp)
}

func (h *Handler) handle(conn net.Conn, logger *slog.Logger, version *models.Version) *response.Response {
	req, err := request.Read(bufio.NewReader(conn), h.MaxHeaderBytes)
	if req != nil {
		*version = req.Version
	}

	switch {
	case errors.Is(err, request.ErrNoRequest):
		logger.Debug("connection closed without request", "error", err)
		return nil
	case request.IsProtocolError(err):
		logger.Info("bad request", "peer", client.Resolve(conn.RemoteAddr(), nil).String(), "error", err)
		return response.BadRequest(*version)
	case err != nil:
		logger.Error("failed to read request", "error", err)
		return h.Composer.ServerError(*version)
	}

	hostname, _ := req.Host()
	rec := models.Record{
		Client:  client.Resolve(conn.RemoteAddr(), req.Headers).String(),
		Method:  req.Method,
		Host:    hostname,
		Path:    req.Path,
		Headers: req.Headers,
	}
	if err := h.Access.Log(rec); err != nil {
		logger.Warn("failed to write access log", "error", err)
	}

	out := h.Resolver.Resolve(req)
	if out.Kind == models.ServerError {
		logger.Error("failed to resolve request", "host", hostname, "path", req.Path, "error", out.Err)
	}

	return h.Composer.Compose(req.Version, out)
}

// write sends resp once. Errors abandon the connection.
func (h *Handler) write(logger *slog.Logger, w io.Writer, resp *response.Response) {
	n, err := resp.WriteTo(w)
	if err != nil {
		logger.Error("failed to write response", "status", resp.Status, "written", n, "error", err)
		return
	}

	logger.Debug("response written",
		"status", resp.Status,
		"size", humanize.Bytes(uint64(n)),
	)
}
