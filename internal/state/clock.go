package state

import (
	"image"
	"sync/atomic"
	"time"

	"LocalPaint/internal/paint"

	"github.com/google/uuid"
)

var snapshotSeq uint64

func nextSeq() uint64 {
	return atomic.AddUint64(&snapshotSeq, 1)
}

// Snapshot is an immutable full copy of the canvas pixels.
type Snapshot struct {
	ID    string
	Seq   uint64
	Taken time.Time

	pix *image.RGBA
}

// capture copies the whole surface. The copy is owned by the snapshot.
func capture(s paint.Surface) *Snapshot {
	return &Snapshot{
		ID:    uuid.NewString(),
		Seq:   nextSeq(),
		Taken: time.Now(),
		pix:   s.Pixels(s.Bounds()),
	}
}

// restore writes the snapshot back onto s.
func (sn *Snapshot) restore(s paint.Surface) {
	s.PutPixels(sn.pix, sn.pix.Rect.Min)
}

// Bounds is the rectangle the snapshot was taken over.
func (sn *Snapshot) Bounds() image.Rectangle {
	return sn.pix.Rect
}

// Size is the number of pixel bytes held by the snapshot.
func (sn *Snapshot) Size() int {
	return len(sn.pix.Pix)
}
