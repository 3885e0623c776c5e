// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sessionhttp

import (
	"context"
	"mime"
	"net/http"
	"strings"

	"github.com/ugorji/go/codec"
)

const (
	JSONContentType    = "application/json"
	MsgpackContentType = "application/msgpack"
)

// Format is a body encoding this transport supports
type Format int

const (
	JSON Format = iota
	Msgpack
)

var handles = []codec.Handle{
	&codec.JsonHandle{
		BasicHandle: codec.BasicHandle{
			TypeInfos: codec.NewTypeInfos([]string{"json"}),
		},
	},
	&codec.MsgpackHandle{
		BasicHandle: codec.BasicHandle{
			TypeInfos: codec.NewTypeInfos([]string{"msgpack"}),
		},
		WriteExt: true,
	},
}

func (f Format) handle() codec.Handle {
	if int(f) < len(handles) {
		return handles[f]
	}

	return handles[JSON]
}

func (f Format) ContentType() string {
	if f == Msgpack {
		return MsgpackContentType
	}

	return JSONContentType
}

// FormatForContentType returns the format named by a Content-Type header.  An empty
// header means JSON.
func FormatForContentType(v string) (Format, bool) {
	if len(v) == 0 {
		return JSON, true
	}

	mediaType, _, err := mime.ParseMediaType(v)
	if err != nil {
		return JSON, false
	}

	switch mediaType {
	case JSONContentType:
		return JSON, true

	case MsgpackContentType:
		return Msgpack, true

	default:
		return JSON, false
	}
}

// FormatForAccept picks the response format for an Accept header.  Msgpack is used only
// when it is explicitly listed; everything else gets JSON.
func FormatForAccept(v string) Format {
	for _, part := range strings.Split(v, ",") {
		if mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part)); err == nil && mediaType == MsgpackContentType {
			return Msgpack
		}
	}

	return JSON
}

type formatKey struct{}

// populateFormat is a go-kit RequestFunc that records the negotiated response format
func populateFormat(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, formatKey{}, FormatForAccept(r.Header.Get("Accept")))
}

func formatFromContext(ctx context.Context) Format {
	if f, ok := ctx.Value(formatKey{}).(Format); ok {
		return f
	}

	return JSON
}
