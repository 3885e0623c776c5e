// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package middleware contains go-kit endpoint middleware shared by the transports.
package middleware
