// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build cdebug

package cdeque

// DebugChecks is true when the cdebug build tag is set.
// The unchecked operations then assert their preconditions instead of
// proceeding with undefined results. Release builds pay no branch: the
// assert call sites are guarded by this compile-time constant.
const DebugChecks = true

func assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
