// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import "strconv"

// MaxWaitCount is the largest number of objects a single wait may name
const MaxWaitCount = 64

// Command identifies an operation of the session command surface.  The numbering is stable
// and matches the device command numbers of the character-device interface.
type Command uint32

const (
	CommandCreateSemaphore  Command = 0
	CommandDelete           Command = 1
	CommandReleaseSemaphore Command = 2
	CommandWaitAny          Command = 3
	CommandReadSemaphore    Command = 8
)

func (c Command) String() string {
	switch c {
	case CommandCreateSemaphore:
		return "create_sem"
	case CommandDelete:
		return "delete"
	case CommandReleaseSemaphore:
		return "put_sem"
	case CommandWaitAny:
		return "wait_any"
	case CommandReadSemaphore:
		return "read_sem"
	default:
		return "command_" + strconv.FormatUint(uint64(c), 10)
	}
}
