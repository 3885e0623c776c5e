// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/ntsync/clock"
	"github.com/xmidt-org/ntsync/object"
	"github.com/xmidt-org/ntsync/table"
	"go.uber.org/zap"
)

// Session is one handle namespace.  All methods are safe for concurrent use.  Once closed,
// every operation fails with object.ErrClosed, though waits already in progress run to completion.
type Session struct {
	id       ksuid.KSUID
	opened   time.Time
	table    *table.Table
	pool     *object.Pool
	clock    clock.Interface
	logger   *zap.Logger
	measures Measures

	closeOnce sync.Once
	closed    atomic.Bool
}

// New creates a standalone Session with its own object pool.  Sessions that should share a pool
// and reclamation domain are opened through a Manager instead.
func New(o *Options) *Session {
	pool := object.NewPool(
		object.WithMeasures(object.NewMeasures(o.metricsProvider())),
	)

	return newSession(o, pool, NewMeasures(o.metricsProvider()))
}

func newSession(o *Options, pool *object.Pool, m Measures) *Session {
	var (
		id = ksuid.New()
		c  = o.clock()
	)

	return &Session{
		id:       id,
		opened:   c.Now(),
		table:    table.New(pool.Domain(), o.tableOptions()),
		pool:     pool,
		clock:    c,
		logger:   o.logger().With(zap.Stringer("session", id)),
		measures: m,
	}
}

// ID returns the unique identifier of this session
func (s *Session) ID() ksuid.KSUID {
	return s.id
}

// Opened returns the time this session was created
func (s *Session) Opened() time.Time {
	return s.opened
}

// Len returns the number of handles this session holds
func (s *Session) Len() int {
	return s.table.Len()
}

func (s *Session) record(c Command, err error) {
	s.measures.Commands.With(CommandLabel, c.String(), OutcomeLabel, object.Code(err)).Add(1.0)
	if err != nil {
		s.logger.Debug("command failed", zap.Stringer("command", c), zap.Error(err))
	}
}

// CreateSemaphore creates a semaphore and returns its handle
func (s *Session) CreateSemaphore(count, max uint32) (h table.Handle, err error) {
	defer func() { s.record(CommandCreateSemaphore, err) }()
	if s.closed.Load() {
		return table.InvalidHandle, object.ErrClosed
	}

	obj, err := s.pool.NewSemaphore(count, max)
	if err != nil {
		return table.InvalidHandle, err
	}

	h, err = s.table.Insert(obj)
	if err != nil {
		obj.Put()
		return table.InvalidHandle, err
	}

	return h, nil
}

// Delete removes a handle from this session.  Waits in progress on the object keep their own
// references and are unaffected, apart from never again being signaled through this handle.
func (s *Session) Delete(h table.Handle) (err error) {
	defer func() { s.record(CommandDelete, err) }()
	if s.closed.Load() {
		return object.ErrClosed
	}

	obj, err := s.table.Remove(h)
	if err != nil {
		return err
	}

	obj.Put()
	return nil
}

// ReleaseSemaphore adds count units to a semaphore, returning the count prior to the release
func (s *Session) ReleaseSemaphore(h table.Handle, count uint32) (prev uint32, err error) {
	defer func() { s.record(CommandReleaseSemaphore, err) }()
	if s.closed.Load() {
		return 0, object.ErrClosed
	}

	obj, err := s.table.LookupTyped(h, object.KindSemaphore)
	if err != nil {
		return 0, err
	}

	defer obj.Put()
	return obj.ReleaseSemaphore(count)
}

// ReadSemaphore returns a snapshot of a semaphore's state
func (s *Session) ReadSemaphore(h table.Handle) (count, max uint32, err error) {
	defer func() { s.record(CommandReadSemaphore, err) }()
	if s.closed.Load() {
		return 0, 0, object.ErrClosed
	}

	obj, err := s.table.LookupTyped(h, object.KindSemaphore)
	if err != nil {
		return 0, 0, err
	}

	defer obj.Put()
	return obj.ReadSemaphore()
}

// Close releases every handle in this session.  Closing an already closed session returns object.ErrClosed.
func (s *Session) Close() error {
	if _, ok := s.close(); !ok {
		return object.ErrClosed
	}

	return nil
}

func (s *Session) close() (released int, ok bool) {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		released = s.table.Close()
		ok = true
		s.logger.Debug("session closed", zap.Int("released", released))
	})

	return
}

// Closed reports whether Close has been called
func (s *Session) Closed() bool {
	return s.closed.Load()
}
