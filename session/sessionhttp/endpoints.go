// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sessionhttp

import (
	"context"
	"net/http"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/xmidt-org/ntsync/session"
	"github.com/xmidt-org/ntsync/table"
)

type sessionRequest struct {
	session string
}

type openSessionResponse struct {
	Session string `json:"session" msgpack:"session"`
}

func (openSessionResponse) StatusCode() int {
	return http.StatusCreated
}

// noContent is the response of commands that produce nothing
type noContent struct{}

func (noContent) StatusCode() int {
	return http.StatusNoContent
}

type createSemaphoreRequest struct {
	session string
	Count   uint32 `json:"count" msgpack:"count"`
	Max     uint32 `json:"max" msgpack:"max"`
}

type createSemaphoreResponse struct {
	Handle table.Handle `json:"handle" msgpack:"handle"`
}

func (createSemaphoreResponse) StatusCode() int {
	return http.StatusCreated
}

type handleRequest struct {
	session string
	handle  table.Handle
}

type readSemaphoreResponse struct {
	Count uint32 `json:"count" msgpack:"count"`
	Max   uint32 `json:"max" msgpack:"max"`
}

type releaseSemaphoreRequest struct {
	session string
	handle  table.Handle
	Count   uint32 `json:"count" msgpack:"count"`
}

type releaseSemaphoreResponse struct {
	Previous uint32 `json:"previous" msgpack:"previous"`
}

type waitAnyRequest struct {
	session  string
	handles  []table.Handle
	owner    uint32
	deadline time.Time
}

type waitAnyResponse struct {
	Index uint32 `json:"index" msgpack:"index"`
}

func newOpenSessionEndpoint(m session.Manager) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		s, err := m.Open()
		if err != nil {
			return nil, err
		}

		return openSessionResponse{Session: s.ID().String()}, nil
	}
}

func newCloseSessionEndpoint(m session.Manager) endpoint.Endpoint {
	return func(ctx context.Context, value interface{}) (interface{}, error) {
		if err := m.Close(value.(*sessionRequest).session); err != nil {
			return nil, err
		}

		return noContent{}, nil
	}
}

func newCreateSemaphoreEndpoint(m session.Manager) endpoint.Endpoint {
	return func(ctx context.Context, value interface{}) (interface{}, error) {
		r := value.(*createSemaphoreRequest)
		s, err := m.Get(r.session)
		if err != nil {
			return nil, err
		}

		h, err := s.CreateSemaphore(r.Count, r.Max)
		if err != nil {
			return nil, err
		}

		return createSemaphoreResponse{Handle: h}, nil
	}
}

func newReadSemaphoreEndpoint(m session.Manager) endpoint.Endpoint {
	return func(ctx context.Context, value interface{}) (interface{}, error) {
		r := value.(*handleRequest)
		s, err := m.Get(r.session)
		if err != nil {
			return nil, err
		}

		count, max, err := s.ReadSemaphore(r.handle)
		if err != nil {
			return nil, err
		}

		return readSemaphoreResponse{Count: count, Max: max}, nil
	}
}

func newReleaseSemaphoreEndpoint(m session.Manager) endpoint.Endpoint {
	return func(ctx context.Context, value interface{}) (interface{}, error) {
		r := value.(*releaseSemaphoreRequest)
		s, err := m.Get(r.session)
		if err != nil {
			return nil, err
		}

		prev, err := s.ReleaseSemaphore(r.handle, r.Count)
		if err != nil {
			return nil, err
		}

		return releaseSemaphoreResponse{Previous: prev}, nil
	}
}

func newDeleteEndpoint(m session.Manager) endpoint.Endpoint {
	return func(ctx context.Context, value interface{}) (interface{}, error) {
		r := value.(*handleRequest)
		s, err := m.Get(r.session)
		if err != nil {
			return nil, err
		}

		if err := s.Delete(r.handle); err != nil {
			return nil, err
		}

		return noContent{}, nil
	}
}

func newWaitAnyEndpoint(m session.Manager) endpoint.Endpoint {
	return func(ctx context.Context, value interface{}) (interface{}, error) {
		r := value.(*waitAnyRequest)
		s, err := m.Get(r.session)
		if err != nil {
			return nil, err
		}

		index, err := s.WaitAny(ctx, r.handles, r.owner, r.deadline)
		if err != nil {
			return nil, err
		}

		return waitAnyResponse{Index: index}, nil
	}
}
