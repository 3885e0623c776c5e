// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package sessionhttp exposes a session.Manager over HTTP using go-kit endpoints.

Bodies are JSON unless the request's Content-Type or Accept names application/msgpack.  Waits
take their parameters from the query string or a url-encoded form, so that a wait over several
handles is simply handle=1&handle=2.  A client that disconnects while waiting interrupts the wait.
*/
package sessionhttp
