package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"

	"apex/internal/models/global"

	"golang.org/x/sync/semaphore"
)

// ConnHandler serves one connection and closes it.
type ConnHandler interface {
	ServeConn(conn net.Conn)
}

// Server accepts connections and hands them to a ConnHandler. With a
// concurrency of 1 a connection is served to completion before the next one
// is accepted.
type Server struct {
	readTimeout  time.Duration
	writeTimeout time.Duration
	handler      ConnHandler
	logger       *slog.Logger

	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

func New(settings *global.Settings, handler ConnHandler, logger *slog.Logger) *Server {
	concurrency := int64(settings.Server.Concurrency)
	if concurrency < 1 {
		concurrency = 1
	}

	s := &Server{
		readTimeout:  settings.Server.Timeouts.Read,
		writeTimeout: settings.Server.Timeouts.Write,
		handler:      handler,
		logger:       logger,
	}
	if concurrency > 1 {
		s.sem = semaphore.NewWeighted(concurrency)
	}
	return s
}

// Serve accepts on ln until ctx is done, then closes ln and waits for the
// connections in flight. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()
	defer s.wg.Wait()

	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			delay = backoff(delay)
			s.logger.Error("accept error", "error", err, "retry_in", delay)
			time.Sleep(delay)
			continue
		}
		delay = 0

		s.setDeadlines(conn)

		if s.sem == nil {
			s.handler.ServeConn(conn)
			continue
		}

		if err := s.sem.Acquire(ctx, 1); err != nil {
			conn.Close()
			return nil
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.sem.Release(1)
			s.handler.ServeConn(conn)
		}()
	}
}

func (s *Server) setDeadlines(conn net.Conn) {
	now := time.Now()
	if s.readTimeout > 0 {
		conn.SetReadDeadline(now.Add(s.readTimeout))
	}
	if s.writeTimeout > 0 {
		conn.SetWriteDeadline(now.Add(s.writeTimeout))
	}
}

// backoff doubles delay from 5ms up to one second, like net/http does for
// temporary accept errors.
func backoff(delay time.Duration) time.Duration {
	if delay == 0 {
		return 5 * time.Millisecond
	}
	if delay *= 2; delay > time.Second {
		delay = time.Second
	}
	return delay
}
