// Package debug gates logging and precondition assertions behind the
// "debug" build tag. Without the tag every call is a no-op.
package debug
