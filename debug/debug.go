//go:build debug
// +build debug

package debug

import (
	"fmt"

	"go.uber.org/zap"
)

const Enabled = true

var logger = newLogger()

func newLogger() *zap.SugaredLogger {
	l, err := zap.NewDevelopment(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}

func Log(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Assert panics with msg when cond does not hold.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		msg := fmt.Sprintf(format, args...)
		logger.Errorf("assertion failed: %s", msg)
		panic("assertion failed: " + msg)
	}
}
