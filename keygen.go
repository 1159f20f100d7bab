package xorcrack

// keyAlphabetSize bounds every key byte to 7-bit ASCII.
const keyAlphabetSize = 128

//KeyGen : lazily enumerates every key of a fixed length over [0, 128)
//
// Keys come out in lexicographic order by byte value, first position varying
// slowest, exactly as if the key were a fixed-width base-128 counter. A full
// traversal yields 128^length keys, which grows explosively: length 4 is
// already ~268 million candidates, so callers must bound length themselves.
type KeyGen struct {
	cur  []byte
	done bool
}

// NewKeyGen returns a generator over all keys of exactly length bytes.
// length 0 yields a single empty key.
func NewKeyGen(length int) *KeyGen {
	return &KeyGen{cur: make([]byte, length)}
}

// Next returns the next candidate and true, or nil and false once the space
// is exhausted. The returned slice is the caller's to keep.
func (g *KeyGen) Next() ([]byte, bool) {
	if g.done {
		return nil, false
	}

	out := make([]byte, len(g.cur))
	copy(out, g.cur)

	// base-128 increment, last byte fastest
	i := len(g.cur) - 1
	for ; i >= 0; i-- {
		g.cur[i]++
		if g.cur[i] < keyAlphabetSize {
			break
		}
		g.cur[i] = 0
	}
	if i < 0 {
		g.done = true
	}

	return out, true
}

// Reset rewinds the generator to the all-zeros key.
func (g *KeyGen) Reset() {
	for i := range g.cur {
		g.cur[i] = 0
	}
	g.done = false
}

// AllKeys materializes the full key space for a length in generator order.
// Only sensible for small lengths; prefer ranging over a KeyGen.
func AllKeys(length int) [][]byte {
	g := NewKeyGen(length)
	var out [][]byte
	for k, ok := g.Next(); ok; k, ok = g.Next() {
		out = append(out, k)
	}
	return out
}
