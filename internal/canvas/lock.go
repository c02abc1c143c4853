package canvas

import (
	"fmt"

	"crusader-assets/internal/codecerr"
)

// LockGuard grants direct byte access to an Image's pixel buffer for the
// duration of the scope. Unlock must be called exactly once, normally via
// defer immediately after a successful Lock, so release happens on every
// exit path including an error path.
type LockGuard struct {
	img    *Image
	closed bool
}

// Lock acquires exclusive direct access to the pixel buffer. Double-locking
// is forbidden.
func (img *Image) Lock() (*LockGuard, error) {
	if img.locked {
		return nil, fmt.Errorf("%w: image is already locked", codecerr.ErrInvalidArgument)
	}
	img.locked = true
	return &LockGuard{img: img}, nil
}

// Bytes returns the raw pixel buffer, row_stride*height bytes, valid only
// until Unlock is called.
func (g *LockGuard) Bytes() []byte {
	return g.img.pix
}

// Unlock releases the lock. It is safe to call more than once.
func (g *LockGuard) Unlock() {
	if g.closed {
		return
	}
	g.closed = true
	g.img.locked = false
}

// Locked reports whether the image currently holds a lock.
func (img *Image) Locked() bool { return img.locked }
