package analysis

import (
	"runtime"
	"sync"
)

// minSweepChunk keeps small sweeps on the calling goroutine.
const minSweepChunk = 256

// parallelFor splits [0, n) into contiguous chunks of at least minChunk and
// runs fn on each concurrently. fn must only touch its own index range.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
