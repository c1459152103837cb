package surface

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
	OpGlow
)

// Op is one recorded drawing call.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64 // rect geometry; circles and glows use X, Y and R
	R          float64
	Color      color.NRGBA
	Stops      []Stop
}

// Recorder is a Surface that records calls instead of drawing them.
type Recorder struct {
	W, H int
	Ops  []Op
}

// NewRecorder returns a recorder reporting the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Op{Kind: OpClear}) }

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: cx, Y: cy, R: rad, Color: c})
}

func (r *Recorder) Glow(cx, cy, rad float64, stops []Stop) {
	r.Ops = append(r.Ops, Op{Kind: OpGlow, X: cx, Y: cy, R: rad, Stops: append([]Stop(nil), stops...)})
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
