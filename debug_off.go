// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !cdebug

package cdeque

// DebugChecks is false when the cdebug build tag is not set.
const DebugChecks = false

func assert(bool, string) {}
