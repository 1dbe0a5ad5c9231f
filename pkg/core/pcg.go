package core

// PCG implements the PCG-XSH-RR 64/32 generator (O'Neill 2014). It is a
// pure function of its counter state, so a fixed (state, sequence) pair
// reproduces the same stream regardless of scheduling. It is not safe for
// concurrent use; every worker owns a private instance.
type PCG struct {
	State uint64
	Inc   uint64
}

// NewPCG creates a generator from an initial state and stream sequence
func NewPCG(initState, initSeq uint64) *PCG {
	p := &PCG{State: 0, Inc: (initSeq << 1) | 1}
	p.Random()
	p.State += initState
	p.Random()
	return p
}

// Random returns the next uniform uint32 of the stream
func (p *PCG) Random() uint32 {
	oldState := p.State
	p.State = oldState*6364136223846793005 + p.Inc

	xorShifted := uint32(((oldState >> 18) ^ oldState) >> 27)
	rot := uint32(oldState >> 59)
	return (xorShifted >> rot) | (xorShifted << ((-rot) & 31))
}

// RandomFloat returns a uniform float64 in [0, 1)
func (p *PCG) RandomFloat() float64 {
	return float64(p.Random()) / (1 << 32)
}

// RandomIntn returns a uniform integer in [0, n) using rejection to
// avoid modulo bias
func (p *PCG) RandomIntn(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	threshold := -n % n
	for {
		r := p.Random()
		if r >= threshold {
			return r % n
		}
	}
}
