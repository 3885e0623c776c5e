// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/justinas/alice"
	"github.com/xmidt-org/ntsync/conlimiter"
	"github.com/xmidt-org/ntsync/logging"
	"github.com/xmidt-org/ntsync/xhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Server runs a single named, instrumented http.Server
type Server struct {
	name     string
	options  xhttp.ServerOptions
	handler  http.Handler
	measures Measures
	logger   *zap.Logger

	lock     sync.Mutex
	listener net.Listener
	server   *http.Server
	done     chan struct{}
}

// New creates a Server.  Nothing is bound until Start.
func New(name string, o xhttp.ServerOptions, h http.Handler, m Measures) *Server {
	logger := o.Logger
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	o.Logger = logger.With(zap.String(ServerKey, name))
	return &Server{
		name:     name,
		options:  o,
		handler:  h,
		measures: m,
		logger:   o.Logger,
	}
}

// Start binds the listener, so that address problems fail startup, and then serves in the background
func (s *Server) Start(context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.server != nil {
		return errors.New("server already started")
	}

	l := s.options.Listener
	if l == nil {
		var err error
		if l, err = net.Listen("tcp", s.options.Address); err != nil {
			return err
		}
	}

	s.listener = InstrumentListener(s.logger, s.measures.Connections, l)
	o := s.options
	o.Listener = s.listener

	s.server = xhttp.NewServer(o)
	s.server.Handler = alice.New(InstrumentHandler(s.measures)).Then(s.handler)
	if o.MaxConnections > 0 {
		cl := &conlimiter.ConLimiter{
			Max: o.MaxConnections,
			OnReject: func(c net.Conn) {
				s.logger.Warn("connection limit reached", zap.Stringer("remoteAddress", c.RemoteAddr()))
			},
		}

		cl.Limit(s.server)
	}
	s.done = make(chan struct{})

	starter := xhttp.NewStarter(o.StartOptions(), s.server)
	go func() {
		defer close(s.done)
		starter()
	}()

	s.logger.Info("server listening", zap.Stringer("address", s.listener.Addr()))
	return nil
}

// Stop gracefully shuts down the server, waiting at most until ctx is done
func (s *Server) Stop(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.server == nil {
		return nil
	}

	err := s.server.Shutdown(ctx)
	if err == nil {
		<-s.done
	}

	s.server = nil
	return err
}

// Addr returns the bound address, or nil if the server is not running
func (s *Server) Addr() net.Addr {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.server == nil {
		return nil
	}

	return s.listener.Addr()
}

// Hook binds this server to an fx lifecycle
func (s *Server) Hook() fx.Hook {
	return fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	}
}
