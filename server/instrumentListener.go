// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net"
	"sync"

	"github.com/go-kit/kit/metrics"
	"go.uber.org/zap"
)

// InstrumentListener decorates l so that g tracks the number of open connections it has accepted
func InstrumentListener(logger *zap.Logger, g metrics.Gauge, l net.Listener) net.Listener {
	return &instrumentedListener{Listener: l, logger: logger, gauge: g}
}

type instrumentedListener struct {
	net.Listener
	logger *zap.Logger
	gauge  metrics.Gauge
}

func (l *instrumentedListener) closeConn() {
	l.gauge.Add(-1.0)
}

func (l *instrumentedListener) Accept() (net.Conn, error) {
	c, err := l.Listener.Accept()
	if err != nil {
		l.logger.Debug("unable to accept connection", zap.Error(err))
		return nil, err
	}

	l.gauge.Add(1.0)
	return &instrumentedConn{Conn: c, closeConn: l.closeConn}, nil
}

func (l *instrumentedListener) Close() error {
	err := l.Listener.Close()
	if err != nil {
		l.logger.Error("error while closing listener", zap.Error(err))
	}

	return err
}

type instrumentedConn struct {
	net.Conn
	closeOnce sync.Once
	closeConn func()
}

func (ic *instrumentedConn) Close() error {
	err := ic.Conn.Close()
	ic.closeOnce.Do(ic.closeConn)
	return err
}
