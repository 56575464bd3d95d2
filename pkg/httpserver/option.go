package httpserver

import (
	"net"
	"time"
)

type Option func(*Server)

func Port(port string) Option {
	return func(s *Server) {
		s.address = net.JoinHostPort("", port)
	}
}

func AppName(name string) Option {
	return func(s *Server) {
		s.appName = name
	}
}

// BodyLimit caps request bodies in bytes; venue photo uploads are the largest payload.
func BodyLimit(bytes int) Option {
	return func(s *Server) {
		if bytes > 0 {
			s.bodyLimit = bytes
		}
	}
}

func ReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = timeout
	}
}

func WriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.writeTimeout = timeout
	}
}

func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}
