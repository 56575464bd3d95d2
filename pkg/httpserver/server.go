package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kickmatch/pkg/failure"
)

const (
	_defaultAddr            = ":3000"
	_defaultAppName         = "kickmatch"
	_defaultBodyLimit       = 8 * 1024 * 1024
	_defaultReadTimeout     = 15 * time.Second
	_defaultWriteTimeout    = 15 * time.Second
	_defaultShutdownTimeout = 3 * time.Second
)

type Server struct {
	App    *fiber.App
	notify chan error

	address         string
	appName         string
	bodyLimit       int
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
}

func New(opts ...Option) *Server {
	s := &Server{
		notify:          make(chan error, 1),
		address:         _defaultAddr,
		appName:         _defaultAppName,
		bodyLimit:       _defaultBodyLimit,
		readTimeout:     _defaultReadTimeout,
		writeTimeout:    _defaultWriteTimeout,
		shutdownTimeout: _defaultShutdownTimeout,
	}

	// Custom options
	for _, opt := range opts {
		opt(s)
	}

	s.App = fiber.New(fiber.Config{
		AppName:      s.appName,
		Prefork:      false,
		BodyLimit:    s.bodyLimit,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		IdleTimeout:  s.shutdownTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})

	return s
}

// errorHandler renders errors that escape a handler in the same shape as response.WithError.
func errorHandler(ctx *fiber.Ctx, err error) error {
	code := failure.GetCode(err)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) Start() {
	go func() {
		s.notify <- s.App.Listen(s.address)
		close(s.notify)
	}()
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() error {
	if err := s.App.ShutdownWithTimeout(s.shutdownTimeout); err != nil {
		return fmt.Errorf("httpserver: shutdown error: %w", err)
	}

	return nil
}
