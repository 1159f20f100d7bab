// Package xorcrack analyzes and breaks repeated-key XOR ciphers: it can
// transform byte streams under a repeating key, estimate the length of an
// unknown key from ciphertext alone, enumerate the candidate key space, and
// score decodes for how much they look like natural-language text.
package xorcrack

import (
	"io"

	"github.com/pkg/errors"
	"github.com/usedbytes/log"
)

//ErrEmptyKey : a transform was requested with a zero-length key
var ErrEmptyKey = errors.New("xorcrack: empty key")

const xorChunkSize = 1024

// XORReader XORs everything read from r against key, repeating the key
// cyclically. The operation is self-inverse: applying it twice with the same
// key returns the original bytes. Input is consumed in bounded chunks so
// arbitrarily large sources need no more working memory than the output
// itself. A failed read aborts the call with the wrapped underlying error.
func XORReader(r io.Reader, key []byte) ([]byte, error) {
	return XORReaderNotify(r, key, nil)
}

// XORReaderNotify is XORReader with a reuse callback: keyReused is invoked at
// most once per call, the first time a byte must be encoded with a repeated
// key byte. A nil callback falls back to a verbose log advisory.
func XORReaderNotify(r io.Reader, key []byte, keyReused func()) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	var out []byte
	buf := make([]byte, xorChunkSize)
	pos, warned := 0, false
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if pos == len(key) && !warned {
				warned = true
				if keyReused != nil {
					keyReused()
				} else {
					log.Verbosef("xorcrack: key shorter than input had to be reused; use a longer key to be secure\n")
				}
			}
			out = append(out, b^key[pos%len(key)])
			pos++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "xorcrack: reading input")
		}
	}

	return out, nil
}

// xorCycle is the in-memory variant for the brute-force hot loop. The key
// must be non-empty.
func xorCycle(in, key []byte) []byte {
	out := make([]byte, len(in))
	for i := range in {
		out[i] = in[i] ^ key[i%len(key)]
	}
	return out
}
