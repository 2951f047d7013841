//go:build !debug
// +build !debug

package debug

const Enabled = false

func Log(format string, args ...interface{}) {}

func Assert(cond bool, format string, args ...interface{}) {}
