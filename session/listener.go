// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

// EventType is the type of session-related event
type EventType uint8

const (
	Open EventType = iota
	Close

	InvalidEventString string = "!!INVALID SESSION EVENT TYPE!!"
)

func (et EventType) String() string {
	switch et {
	case Open:
		return "Open"
	case Close:
		return "Close"
	default:
		return InvalidEventString
	}
}

// Event represents a change in a session's lifecycle.  Events must not be retained
// beyond the listener invocation.
type Event struct {
	// Type describes the kind of this event.  This field is always set.
	Type EventType

	// Session is the session, possibly closed, this event concerns.  This field is always set.
	Session *Session

	// Released is the number of handles that were still open when a session closed.
	// It is only set for Close events.
	Released int
}

// Listener is an event sink.  Listeners are invoked synchronously and must not block.
type Listener func(*Event)

// Listeners is an aggregate Listener that dispatches to each of its members in order
type Listeners []Listener

func (ls Listeners) OnEvent(e *Event) {
	for _, l := range ls {
		l(e)
	}
}
