// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdeque

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a checked operation cannot proceed.
//
// For TryPushBack/TryPushFront and the Try* bulk inserts: the deque has
// no room (backpressure). For TryPopBack/TryPopFront: the deque is
// empty.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller
// should make room (or produce data) and retry rather than propagating
// the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrOutOfRange indicates an index outside [0...Len()).
//
// Returned by [Deque.At]. Unlike ErrWouldBlock it is a recoverable
// caller-facing error, not a control flow signal.
var ErrOutOfRange = errors.New("cdeque: index out of range")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic]. ErrOutOfRange is not semantic.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
