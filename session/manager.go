// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"
	"sync"

	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/ntsync/object"
	"go.uber.org/zap"
)

// Manager tracks the open sessions of a process
type Manager interface {
	// Open creates a new session.  If the session limit has been reached, ErrTooManySessions is returned.
	Open() (*Session, error)

	// Get returns the open session with the given string id
	Get(id string) (*Session, error)

	// Close closes the session with the given id, releasing all of its handles
	Close(id string) error

	// CloseAll closes every open session and returns how many were closed
	CloseAll() int

	// Len returns the number of open sessions
	Len() int

	// Pool returns the object pool shared by every session
	Pool() *object.Pool
}

// NewManager constructs a Manager from a set of options.  A nil Options is allowed.
func NewManager(o *Options) Manager {
	p := o.metricsProvider()
	m := &manager{
		options:     o,
		logger:      o.logger(),
		maxSessions: o.maxSessions(),
		listeners:   Listeners(o.listeners()),
		measures:    NewMeasures(p),
		pool: object.NewPool(
			object.WithMeasures(object.NewMeasures(p)),
		),
		sessions: make(map[ksuid.KSUID]*Session),
	}

	return m
}

type manager struct {
	options     *Options
	logger      *zap.Logger
	maxSessions int
	listeners   Listeners
	measures    Measures
	pool        *object.Pool

	lock     sync.RWMutex
	sessions map[ksuid.KSUID]*Session
}

func parseID(id string) (ksuid.KSUID, error) {
	k, err := ksuid.Parse(id)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("%w: %s", ErrSessionNotFound, err)
	}

	return k, nil
}

func (m *manager) Open() (*Session, error) {
	s := newSession(m.options, m.pool, m.measures)

	m.lock.Lock()
	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		m.lock.Unlock()
		m.measures.LimitReached.Add(1.0)
		m.logger.Error("session limit reached", zap.Int("maxSessions", m.maxSessions))
		return nil, ErrTooManySessions
	}

	m.sessions[s.ID()] = s
	m.lock.Unlock()

	m.measures.Sessions.Add(1.0)
	m.logger.Debug("session opened", zap.Stringer("session", s.ID()))
	m.listeners.OnEvent(&Event{Type: Open, Session: s})
	return s, nil
}

func (m *manager) Get(id string) (*Session, error) {
	k, err := parseID(id)
	if err != nil {
		return nil, err
	}

	m.lock.RLock()
	s, ok := m.sessions[k]
	m.lock.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return s, nil
}

func (m *manager) remove(k ksuid.KSUID) *Session {
	m.lock.Lock()
	defer m.lock.Unlock()
	s := m.sessions[k]
	delete(m.sessions, k)
	return s
}

func (m *manager) closeSession(s *Session) {
	released, ok := s.close()
	if !ok {
		return
	}

	m.measures.Sessions.Add(-1.0)
	m.listeners.OnEvent(&Event{Type: Close, Session: s, Released: released})
}

func (m *manager) Close(id string) error {
	k, err := parseID(id)
	if err != nil {
		return err
	}

	s := m.remove(k)
	if s == nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	m.closeSession(s)
	return nil
}

func (m *manager) CloseAll() int {
	m.lock.Lock()
	sessions := m.sessions
	m.sessions = make(map[ksuid.KSUID]*Session)
	m.lock.Unlock()

	for _, s := range sessions {
		m.closeSession(s)
	}

	m.logger.Info("closed all sessions", zap.Int("count", len(sessions)))
	return len(sessions)
}

func (m *manager) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.sessions)
}

func (m *manager) Pool() *object.Pool {
	return m.pool
}
