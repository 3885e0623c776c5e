// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/xmidt-org/ntsync/logging"
	"go.uber.org/zap"
)

// httpServer is the subset of *http.Server that a starter needs
type httpServer interface {
	SetKeepAlivesEnabled(bool)
	ListenAndServe() error
	ListenAndServeTLS(certificateFile, keyFile string) error
	Serve(net.Listener) error
	ServeTLS(l net.Listener, certificateFile, keyFile string) error
}

// NewServerConnStateLogger returns an http.Server.ConnState function that logs each transition
// at debug level.
func NewServerConnStateLogger(logger *zap.Logger) func(net.Conn, http.ConnState) {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	return func(c net.Conn, cs http.ConnState) {
		logger.Debug("connection state",
			zap.Stringer("remoteAddress", c.RemoteAddr()),
			zap.Stringer("state", cs),
		)
	}
}

// StartOptions represents the subset of server options that have to do with how
// an HTTP server is started.
type StartOptions struct {
	// Logger is used for server startup and error logging.  If not
	// supplied, logging.DefaultLogger() is used instead.
	Logger *zap.Logger `json:"-"`

	// Listener is the optional net.Listener to use.  If not supplied, the http.Server default
	// listener is used.
	Listener net.Listener `json:"-"`

	DisableKeepAlives bool `json:"disableKeepAlives,omitempty"`

	// CertificateFile is the HTTPS certificate file.  If both this field and KeyFile are set,
	// an HTTPS starter function is created.
	CertificateFile string `json:"certificateFile,omitempty"`

	KeyFile string `json:"keyFile,omitempty"`
}

// NewStarter returns a starter closure for the given HTTP server.  The start options are first
// applied to the server instance, which must not have been started yet.
//
// The returned closure invokes Serve, ServeTLS, ListenAndServe, or ListenAndServeTLS depending on
// whether a Listener and TLS files are configured.  http.ErrServerClosed is not reported as an error.
func NewStarter(o StartOptions, s httpServer) func() error {
	if o.Logger == nil {
		o.Logger = logging.DefaultLogger()
	}

	s.SetKeepAlivesEnabled(!o.DisableKeepAlives)

	var (
		tls     = len(o.CertificateFile) > 0 && len(o.KeyFile) > 0
		starter func() error
	)

	switch {
	case tls && o.Listener != nil:
		starter = func() error {
			return s.ServeTLS(o.Listener, o.CertificateFile, o.KeyFile)
		}

	case tls:
		starter = func() error {
			return s.ListenAndServeTLS(o.CertificateFile, o.KeyFile)
		}

	case o.Listener != nil:
		starter = func() error {
			return s.Serve(o.Listener)
		}

	default:
		starter = s.ListenAndServe
	}

	return func() error {
		o.Logger.Info("starting server", zap.Bool("tls", tls))
		err := starter()
		if errors.Is(err, http.ErrServerClosed) {
			o.Logger.Info("server closed")
			return nil
		}

		o.Logger.Error("server exited", zap.Error(err))
		return err
	}
}

// ServerOptions describes the superset of options for both constructing an http.Server and
// starting it.
type ServerOptions struct {
	Logger *zap.Logger `json:"-"`

	Address           string        `json:"address,omitempty" mapstructure:"address"`
	ReadTimeout       time.Duration `json:"readTimeout,omitempty" mapstructure:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout,omitempty" mapstructure:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout,omitempty" mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout,omitempty" mapstructure:"idleTimeout"`
	MaxHeaderBytes    int           `json:"maxHeaderBytes,omitempty" mapstructure:"maxHeaderBytes"`

	Listener net.Listener `json:"-" mapstructure:"-"`

	DisableKeepAlives bool   `json:"disableKeepAlives,omitempty" mapstructure:"disableKeepAlives"`
	CertificateFile   string `json:"certificateFile,omitempty" mapstructure:"certificateFile"`
	KeyFile           string `json:"keyFile,omitempty" mapstructure:"keyFile"`

	// MaxConnections caps the open connections of the server.  Nonpositive means no cap.
	MaxConnections int32 `json:"maxConnections,omitempty" mapstructure:"maxConnections"`
}

func (so *ServerOptions) logger() *zap.Logger {
	if so.Logger != nil {
		return so.Logger
	}

	return logging.DefaultLogger()
}

// StartOptions produces a StartOptions with the corresponding values from this ServerOptions
func (so *ServerOptions) StartOptions() StartOptions {
	return StartOptions{
		Logger:            so.logger().With(zap.String("address", so.Address)),
		Listener:          so.Listener,
		DisableKeepAlives: so.DisableKeepAlives,
		CertificateFile:   so.CertificateFile,
		KeyFile:           so.KeyFile,
	}
}

// NewServer creates a Server from a supplied set of options.  The handler is left unset.
func NewServer(o ServerOptions) *http.Server {
	logger := o.logger()
	return &http.Server{
		Addr:              o.Address,
		ReadTimeout:       o.ReadTimeout,
		ReadHeaderTimeout: o.ReadHeaderTimeout,
		WriteTimeout:      o.WriteTimeout,
		IdleTimeout:       o.IdleTimeout,
		MaxHeaderBytes:    o.MaxHeaderBytes,
		ErrorLog:          logging.NewErrorLog(o.Address, logger),
		ConnState:         NewServerConnStateLogger(logger),
	}
}
