// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package server handles the process-level concerns of running ntsyncd's HTTP servers: reading
configuration through viper, binding command-line flags, and running instrumented http.Servers
under an fx lifecycle.
*/
package server
