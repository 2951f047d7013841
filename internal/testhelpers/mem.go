package testhelpers

import (
	"fmt"
	"runtime"
)

// TotalAlloc returns the cumulative bytes allocated by the process.
func TotalAlloc() uint64 {
	ms := &runtime.MemStats{}
	runtime.ReadMemStats(ms)
	return ms.TotalAlloc
}

func KMG(v uint64) string {
	if v < 1024 {
		return fmt.Sprintf("%d", v)
	} else if v < 1024*1024 {
		return fmt.Sprintf("%d (%.2f KiB)", v, float64(v)/float64(1024))
	} else if v < 1024*1024*1024 {
		return fmt.Sprintf("%d (%.2f MiB)", v, float64(v)/float64(1024*1024))
	} else {
		return fmt.Sprintf("%d (%.2f GiB)", v, float64(v)/float64(1024*1024*1024))
	}
}

// MemDelta renders the bytes allocated since startMem.
func MemDelta(startMem uint64) string {
	return KMG(TotalAlloc() - startMem)
}
