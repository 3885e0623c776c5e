// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package concurrent runs background tasks that share a wait group and a shutdown channel,
and binds them to an fx application's lifecycle.
*/
package concurrent
