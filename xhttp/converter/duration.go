// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package converter holds gorilla/schema converters for types the schema package does not
// handle natively.
package converter

import (
	"reflect"
	"time"
)

// Duration converts a time.ParseDuration string.  An invalid value yields the zero reflect.Value,
// which schema reports as a conversion error.
func Duration(v string) reflect.Value {
	d, err := time.ParseDuration(v)
	if err != nil {
		return reflect.Value{}
	}

	return reflect.ValueOf(d)
}
