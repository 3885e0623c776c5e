// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cast"
	"github.com/xmidt-org/ntsync/object"
)

// Handle is the opaque identifier of an object within one table
type Handle uint32

// InvalidHandle is never allocated by a table
const InvalidHandle Handle = 0

// Bytes returns the big-endian encoding of this handle
func (h Handle) Bytes() []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(h))
	return b[:]
}

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// ParseHandle converts an arbitrary value, typically a path variable or form field, into a Handle.
// Values that are not representable as a 32-bit unsigned integer yield object.ErrInvalidArgument.
func ParseHandle(v interface{}) (Handle, error) {
	h, err := cast.ToUint64E(v)
	if err != nil {
		return InvalidHandle, fmt.Errorf("%w: %s", object.ErrInvalidArgument, err)
	}

	if h > math.MaxUint32 {
		return InvalidHandle, fmt.Errorf("%w: handle %d does not fit in 32 bits", object.ErrInvalidArgument, h)
	}

	return Handle(h), nil
}

// ParseHandles converts each value in turn, stopping at the first failure
func ParseHandles(v []string) ([]Handle, error) {
	handles := make([]Handle, len(v))
	for i, s := range v {
		var err error
		if handles[i], err = ParseHandle(s); err != nil {
			return nil, err
		}
	}

	return handles, nil
}
