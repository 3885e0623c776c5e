// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xmetrics builds the Prometheus registry behind every ntsync measure.  Packages declare
their metrics up front through a Module and consume them as go-kit metrics, so nothing outside
this package and the metrics endpoint touches Prometheus directly.
*/
package xmetrics
