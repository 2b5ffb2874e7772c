// pool.go implements a pool for reusing frame buffers.

package frame

import (
	"sync"
)

var ReuseMemory = true

// Pool reuses frame buffers of a single geometry. The engine allocates
// one intermediate frame per matrix in the chain for every input frame,
// so recycling keeps the per-frame allocation count flat.
type Pool struct {
	initOnce sync.Once
	width    int
	height   int
	pool     sync.Pool
}

// Get returns a frame of the given dimensions, reusing a previously
// recycled buffer when the geometry matches.
func (p *Pool) Get(width, height int) *Frame {
	p.initOnce.Do(func() {
		p.width, p.height = width, height
		p.pool.New = func() any {
			return New(p.width, p.height)
		}
	})
	if width != p.width || height != p.height {
		return New(width, height)
	}
	return p.pool.Get().(*Frame)
}

// Put returns frames to the pool. Frames of a foreign geometry are
// dropped for the garbage collector to handle.
func (p *Pool) Put(frames ...*Frame) {
	if !ReuseMemory {
		return
	}
	for _, f := range frames {
		if f == nil || f.Width != p.width || f.Height != p.height {
			continue
		}
		p.pool.Put(f)
	}
}
