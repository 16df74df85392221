package playerjs

// OpKind identifies one of the three transform primitives YouTube's
// player script composes into a signature cipher.
type OpKind int

const (
	OpReverse OpKind = iota
	OpSplice
	OpSwapFirst
)

func (k OpKind) String() string {
	switch k {
	case OpReverse:
		return "reverse"
	case OpSplice:
		return "splice"
	case OpSwapFirst:
		return "swap"
	}
	return "unknown"
}

// Operation is a single cipher instruction. Arg is the integer the
// player script passes at the call site; it is ignored for OpReverse.
type Operation struct {
	Kind OpKind
	Arg  int
}

// Program is the ordered instruction sequence extracted from one player
// script. It is immutable once constructed; order is load-bearing.
type Program []Operation

// Apply runs the program over a signature and returns the transformed
// copy. The input slice is never mutated.
func (p Program) Apply(sig []byte) []byte {
	bs := make([]byte, len(sig))
	copy(bs, sig)
	for _, op := range p {
		switch op.Kind {
		case OpReverse:
			for l, r := 0, len(bs)-1; l < r; l, r = l+1, r-1 {
				bs[l], bs[r] = bs[r], bs[l]
			}
		case OpSplice:
			// splice(0,n) with n past the end empties the array.
			if op.Arg >= len(bs) {
				bs = bs[:0]
			} else if op.Arg >= 0 {
				bs = bs[op.Arg:]
			}
		case OpSwapFirst:
			if len(bs) > 0 {
				pos := op.Arg % len(bs)
				bs[0], bs[pos] = bs[pos], bs[0]
			}
		}
	}
	return bs
}
