package testhelpers

import "math/rand"

// N is the element count used by the larger container tests.
const N = 100000

// SeqGen produces reproducible value sequences for container tests.
type SeqGen interface {
	Seed(value uint)
	Next() uint
	// Intn returns the next value reduced to [0, n).
	Intn(n int) int
	Reset()
	SetPeriod(period uint)
	Period() uint
}

const (
	SgRand = iota
	SgSeq
	SgTwist
)

func NewSeqGen(sgt int) SeqGen {
	switch sgt {
	case SgRand:
		return &randSG{seed: 1}
	case SgSeq:
		return &seqSG{}
	case SgTwist:
		return &twistSG{}
	default:
		panic("invalid sequence generator type")
	}
}

func intn(g SeqGen, n int) int {
	if n <= 0 {
		panic("invalid bound")
	}
	return int(g.Next() % uint(n))
}

type randSG struct {
	r         *rand.Rand
	seed      int64
	period    uint
	generated uint
}

func (g *randSG) Next() uint {
	if g.period != 0 && g.period == g.generated {
		g.Reset()
	}
	if g.r == nil {
		g.r = rand.New(rand.NewSource(g.seed))
	}
	g.generated++
	return uint(g.r.Int63())
}
func (g *randSG) Intn(n int) int {
	return intn(g, n)
}
func (g *randSG) Reset() {
	g.r = rand.New(rand.NewSource(g.seed))
	g.generated = 0
}
func (g *randSG) Seed(value uint) {
	g.seed = int64(value)
	g.Reset()
}
func (g *randSG) SetPeriod(period uint) {
	g.period = period
}
func (g *randSG) Period() uint {
	return g.period
}

type seqSG struct {
	cur, start uint
	period     uint
}

func (g *seqSG) Next() uint {
	g.cur++
	if g.period != 0 {
		return g.cur % g.period
	}
	return g.cur
}
func (g *seqSG) Intn(n int) int {
	return intn(g, n)
}
func (g *seqSG) Reset() {
	g.cur = g.start
}
func (g *seqSG) Seed(value uint) {
	g.start = value
	g.cur = value
}
func (g *seqSG) SetPeriod(period uint) {
	g.period = period
}
func (g *seqSG) Period() uint {
	return g.period
}

type twistSG struct {
	cur, start        uint
	period, generated uint
}

func (g *twistSG) Next() uint {
	if g.period != 0 && g.generated == g.period {
		g.Reset()
	}
	if (g.cur & 0x8000000000000000) == 0 {
		g.cur = ^g.cur - 1
	} else {
		g.cur = ^g.cur + 1
	}
	g.generated++
	return g.cur
}
func (g *twistSG) Intn(n int) int {
	return intn(g, n)
}
func (g *twistSG) Reset() {
	g.cur = g.start
	g.generated = 0
}
func (g *twistSG) Seed(value uint) {
	g.start = value
	g.Reset()
}
func (g *twistSG) SetPeriod(period uint) {
	g.period = period
	g.generated = 0
}
func (g *twistSG) Period() uint {
	return g.period
}
