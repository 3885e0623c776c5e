// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sessionhttp

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/go-kit/kit/transport"
	gokithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/ntsync/adapter"
	"github.com/xmidt-org/ntsync/clock"
	"github.com/xmidt-org/ntsync/logging"
	"github.com/xmidt-org/ntsync/logging/logginghttp"
	"github.com/xmidt-org/ntsync/middleware"
	"github.com/xmidt-org/ntsync/object"
	"github.com/xmidt-org/ntsync/semaphore"
	"github.com/xmidt-org/ntsync/session"
	"github.com/xmidt-org/ntsync/xhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	// APIBase is the path prefix of every route
	APIBase = "/api/v1"

	// OperationName names the server span of each request
	OperationName = "ntsync"
)

// ErrTooManyWaits is returned when a wait gives up while queued behind WaitConcurrency others
var ErrTooManyWaits = &xhttp.Error{
	Code: http.StatusServiceUnavailable,
	Text: "too many concurrent waits",
}

// Options configures the HTTP surface
type Options struct {
	Manager  session.Manager
	Logger   *zap.Logger
	Clock    clock.Interface
	Provider provider.Provider

	// Timeout bounds every command except waits, which are bounded only by their own deadline
	Timeout time.Duration

	// WaitConcurrency limits the number of waits in flight.  Nonpositive means unlimited.
	WaitConcurrency int
}

func (o *Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return logging.DefaultLogger()
}

func (o *Options) clock() clock.Interface {
	if o.Clock != nil {
		return o.Clock
	}

	return clock.System()
}

// Handler is the routed API.  Close releases the wait limiter, failing any wait still queued on it.
type Handler struct {
	http.Handler

	limiter semaphore.Closeable
	private *session.Session
}

// Close releases the resources held by this handler.  It is idempotent.
func (h *Handler) Close() error {
	if h.limiter == nil {
		return nil
	}

	var err error
	if closeErr := h.limiter.Close(); closeErr != nil && !errors.Is(closeErr, semaphore.ErrClosed) {
		err = closeErr
	}

	if closeErr := h.private.Close(); closeErr != nil && !errors.Is(closeErr, object.ErrClosed) && err == nil {
		err = closeErr
	}

	return err
}

// NewHandler builds the routed, instrumented handler for o.Manager
func NewHandler(o Options) (*Handler, error) {
	if o.Manager == nil {
		return nil, errors.New("a session manager is required")
	}

	var (
		logger = o.logger()
		m      = o.Manager

		serverOptions = []gokithttp.ServerOption{
			gokithttp.ServerBefore(populateFormat),
			gokithttp.ServerErrorEncoder(encodeError),
			gokithttp.ServerErrorHandler(transport.NewLogErrorHandler(adapter.Logger{Logger: logger})),
		}

		command = func(name string) endpoint.Middleware {
			return endpoint.Chain(middleware.Logging(name), middleware.Timeout(o.Timeout))
		}

		waiting = middleware.Logging(session.CommandWaitAny.String())
		h       = new(Handler)
	)

	if o.WaitConcurrency > 0 {
		// the limiter lives in a private session so its handle is never visible to clients
		h.private = session.New(&session.Options{Logger: logger, Clock: o.Clock})
		limiter, err := semaphore.NewCloseable(h.private, o.WaitConcurrency)
		if err != nil {
			h.private.Close()
			return nil, err
		}

		h.limiter = limiter
		measures := NewMeasures(o.Provider)
		waiting = endpoint.Chain(
			waiting,
			middleware.Concurrent(
				semaphore.Instrument(
					limiter,
					semaphore.WithResources(measures.WaitSlots),
					semaphore.WithFailures(measures.WaitRejected),
				),
				ErrTooManyWaits,
			),
		)
	}

	var (
		router   = mux.NewRouter()
		sessions = router.PathPrefix(APIBase + "/sessions").Subrouter()
		server   = func(e endpoint.Endpoint, dec gokithttp.DecodeRequestFunc) http.Handler {
			return gokithttp.NewServer(e, dec, encodeResponse, serverOptions...)
		}
	)

	sessions.Handle("", server(
		command("open_session")(newOpenSessionEndpoint(m)),
		decodeNothing,
	)).Methods(http.MethodPost)

	sessions.Handle("/{session}", server(
		command("close_session")(newCloseSessionEndpoint(m)),
		decodeSessionRequest,
	)).Methods(http.MethodDelete)

	sessions.Handle("/{session}/semaphores", server(
		command(session.CommandCreateSemaphore.String())(newCreateSemaphoreEndpoint(m)),
		decodeCreateSemaphoreRequest,
	)).Methods(http.MethodPost)

	sessions.Handle("/{session}/semaphores/{handle}", server(
		command(session.CommandReadSemaphore.String())(newReadSemaphoreEndpoint(m)),
		decodeHandleRequest,
	)).Methods(http.MethodGet)

	sessions.Handle("/{session}/semaphores/{handle}/release", server(
		command(session.CommandReleaseSemaphore.String())(newReleaseSemaphoreEndpoint(m)),
		decodeReleaseSemaphoreRequest,
	)).Methods(http.MethodPost)

	sessions.Handle("/{session}/objects/{handle}", server(
		command(session.CommandDelete.String())(newDeleteEndpoint(m)),
		decodeHandleRequest,
	)).Methods(http.MethodDelete)

	sessions.Handle("/{session}/wait", server(
		waiting(newWaitAnyEndpoint(m)),
		newDecodeWaitAnyRequest(newWaitDecoder(), o.clock().Now),
	)).Methods(http.MethodPost)

	h.Handler = alice.New(
		func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(next, OperationName)
		},
		logginghttp.PopulateLogger(logger),
	).Then(router)

	return h, nil
}
