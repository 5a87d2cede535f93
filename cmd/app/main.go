package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"apex/internal/application/accesslog"
	"apex/internal/application/config"
	"apex/internal/application/server"
	"apex/internal/application/site"
	"apex/internal/models/global"

	"github.com/dustin/go-humanize"
)

const settingsPath = "./config/settings.yml"

func main() {
	settings, err := loadSettings(settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %s", err)
	}

	logger := newLogger(os.Stderr, settings.Log)
	slog.SetDefault(logger)

	logHosts(logger, settings.Server.DocumentRoot)

	handler := site.NewSiteHandler(logger, settings, accesslog.New(os.Stdout, settings.Log.VerboseHeaders))
	srv := server.New(settings, handler, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", settings.Server.Listen)
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}

	fmt.Println(banner(ln.Addr()))
	logger.Info("listening",
		"addr", ln.Addr().String(),
		"document_root", settings.Server.DocumentRoot,
		"concurrency", settings.Server.Concurrency,
		"confine", settings.Server.Confined(),
	)

	if err := srv.Serve(ctx, ln); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
	logger.Info("shut down")
}

// loadSettings falls back to the built-in defaults when there is no
// settings file.
func loadSettings(path string) (*global.Settings, error) {
	settings, err := config.LoadSettings(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return settings, err
}

func newLogger(w io.Writer, cfg global.Log) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func logHosts(logger *slog.Logger, root string) {
	hosts, err := config.LoadHosts(root)
	if err != nil {
		logger.Warn("cannot list virtual hosts", "document_root", root, "error", err)
		return
	}

	for _, h := range hosts {
		logger.Info("virtual host", "host", h.Name, "files", h.Files, "size", humanize.Bytes(h.Bytes))
	}
}

func banner(addr net.Addr) string {
	port := "8080"
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = fmt.Sprint(tcp.Port)
	}
	return "Connect via http://localhost:" + port + "/"
}
