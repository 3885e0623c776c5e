// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package session provides independent handle namespaces over synchronization objects.

A Session owns one handle table and exposes the command surface: creating, releasing, reading
and deleting semaphores, and waiting for any of several objects.  Closing a Session releases
every handle it still holds.  A Manager opens, tracks and closes sessions, all of which share a
single object pool and reclamation domain.
*/
package session
