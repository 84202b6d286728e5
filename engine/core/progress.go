package core

// Progress counts completion of a fixed-size batch of asynchronous
// operations. Callers must call Inc exactly once per settled item; there is
// no bound checking. An empty batch is done immediately.
//
// Firing a completion callback the first time Done becomes true is the
// owner's responsibility, guarded by its own "already fired" flag.
type Progress struct {
	length int
	count  int
}

func NewProgress(length int) *Progress {
	return &Progress{length: length}
}

// Inc records one settled item. A failed item still counts as settled so
// sibling loads are never blocked by one failure.
func (p *Progress) Inc() {
	p.count++
}

// Done reports whether every item in the batch has settled.
func (p *Progress) Done() bool {
	return p.count == p.length
}

// Fraction returns completion in [0, 1]. An empty batch reports 1.
func (p *Progress) Fraction() float64 {
	if p.length == 0 {
		return 1
	}
	return float64(p.count) / float64(p.length)
}

func (p *Progress) Count() int {
	return p.count
}

func (p *Progress) Length() int {
	return p.length
}
