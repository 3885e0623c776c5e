// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sessionhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gokithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/ugorji/go/codec"
	"github.com/xmidt-org/ntsync/object"
	"github.com/xmidt-org/ntsync/table"
	"github.com/xmidt-org/ntsync/xhttp"
	"github.com/xmidt-org/ntsync/xhttp/converter"
)

const (
	SessionVariable = "session"
	HandleVariable  = "handle"
)

// waitForm is the schema-decoded form of a wait.  Handles stay strings so that they are parsed
// the same way as path variables.  Timeout is a relative alternative to Deadline; neither means
// the wait never times out.
type waitForm struct {
	Handle   []string      `schema:"handle,required"`
	Owner    uint32        `schema:"owner,required"`
	Deadline time.Time     `schema:"deadline"`
	Timeout  time.Duration `schema:"timeout"`
}

func (wf waitForm) deadline(now func() time.Time) (time.Time, error) {
	switch {
	case !wf.Deadline.IsZero() && wf.Timeout != 0:
		return time.Time{}, invalidArgument(errors.New("deadline and timeout are mutually exclusive"))

	case wf.Timeout < 0:
		return time.Time{}, invalidArgument(errors.New("negative timeout"))

	case wf.Timeout > 0:
		return now().Add(wf.Timeout), nil

	default:
		return wf.Deadline, nil
	}
}

func newWaitDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(time.Time{}, converter.Time)
	d.RegisterConverter(time.Duration(0), converter.Duration)
	return d
}

func invalidArgument(err error) error {
	return fmt.Errorf("%w: %s", object.ErrInvalidArgument, err)
}

func decodeBody(r *http.Request, v interface{}) error {
	f, ok := FormatForContentType(r.Header.Get("Content-Type"))
	if !ok {
		return &xhttp.Error{
			Code: http.StatusUnsupportedMediaType,
			Text: fmt.Sprintf("unsupported content type %q", r.Header.Get("Content-Type")),
		}
	}

	if err := codec.NewDecoder(r.Body, f.handle()).Decode(v); err != nil {
		return invalidArgument(err)
	}

	return nil
}

func sessionVariable(r *http.Request) string {
	return mux.Vars(r)[SessionVariable]
}

func handleVariable(r *http.Request) (table.Handle, error) {
	v, ok := mux.Vars(r)[HandleVariable]
	if !ok {
		return table.InvalidHandle, object.ErrInvalidArgument
	}

	return table.ParseHandle(v)
}

func decodeNothing(context.Context, *http.Request) (interface{}, error) {
	return nil, nil
}

func decodeSessionRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &sessionRequest{session: sessionVariable(r)}, nil
}

func decodeCreateSemaphoreRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := &createSemaphoreRequest{session: sessionVariable(r)}
	if err := decodeBody(r, req); err != nil {
		return nil, err
	}

	return req, nil
}

func decodeHandleRequest(_ context.Context, r *http.Request) (interface{}, error) {
	h, err := handleVariable(r)
	if err != nil {
		return nil, err
	}

	return &handleRequest{session: sessionVariable(r), handle: h}, nil
}

func decodeReleaseSemaphoreRequest(_ context.Context, r *http.Request) (interface{}, error) {
	h, err := handleVariable(r)
	if err != nil {
		return nil, err
	}

	req := &releaseSemaphoreRequest{session: sessionVariable(r), handle: h}
	if err := decodeBody(r, req); err != nil {
		return nil, err
	}

	return req, nil
}

// newDecodeWaitAnyRequest decodes waits from the query string and any url-encoded form body
func newDecodeWaitAnyRequest(d *schema.Decoder, now func() time.Time) gokithttp.DecodeRequestFunc {
	return func(_ context.Context, r *http.Request) (interface{}, error) {
		if err := r.ParseForm(); err != nil {
			return nil, invalidArgument(err)
		}

		var form waitForm
		if err := d.Decode(&form, r.Form); err != nil {
			return nil, invalidArgument(err)
		}

		handles, err := table.ParseHandles(form.Handle)
		if err != nil {
			return nil, err
		}

		deadline, err := form.deadline(now)
		if err != nil {
			return nil, err
		}

		return &waitAnyRequest{
			session:  sessionVariable(r),
			handles:  handles,
			owner:    form.Owner,
			deadline: deadline,
		}, nil
	}
}

// encodeResponse writes response in the negotiated format.  Responses implementing go-kit's
// StatusCoder choose their own status, and a 204 is written without a body.
func encodeResponse(ctx context.Context, rw http.ResponseWriter, response interface{}) error {
	code := http.StatusOK
	if sc, ok := response.(gokithttp.StatusCoder); ok {
		code = sc.StatusCode()
	}

	if code == http.StatusNoContent {
		rw.WriteHeader(code)
		return nil
	}

	f := formatFromContext(ctx)
	rw.Header().Set("Content-Type", f.ContentType())
	rw.WriteHeader(code)
	return codec.NewEncoder(rw, f.handle()).Encode(response)
}
