// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package semaphore provides an in-process semaphore API backed by a session semaphore handle.

Acquiring waits on the handle, releasing puts one unit back.  Any number of Interface values
can share a Session, each with its own handle.
*/
package semaphore
