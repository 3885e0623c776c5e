// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package table maps handles onto reference-counted synchronization objects.

A Table owns one reference to every object inserted into it.  Lookup hands the caller an
additional reference, which must be released with Put.  Remove detaches a handle and transfers
the table's reference to the caller.
*/
package table
