// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package converter

import (
	"reflect"
	"strconv"
	"time"
)

// Time converts either an RFC3339 timestamp, with optional fractional seconds, or an integral
// count of nanoseconds since the Unix epoch.
func Time(v string) reflect.Value {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return reflect.ValueOf(t)
	}

	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return reflect.ValueOf(time.Unix(0, n))
	}

	return reflect.Value{}
}
