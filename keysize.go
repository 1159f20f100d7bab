package xorcrack

import (
	"math/bits"
	"sort"

	"github.com/usedbytes/log"
)

//DefaultSamplePairs : chunk pairs compared per candidate keysize by EstimateKeySizes
const DefaultSamplePairs = 2

// HammingDistance counts the differing bits between two equal-length byte
// slices. Panics on a length mismatch.
func HammingDistance(a, b []byte) int {
	if len(a) != len(b) {
		panic("hamming distance: length mismatch")
	}
	d := 0
	for i := range a {
		d += bits.OnesCount8(a[i] ^ b[i])
	}
	return d
}

// EstimateKeySizes scores every candidate keysize from 1 to max against the
// ciphertext with the default sampling bound. See EstimateKeySizesSampled.
func EstimateKeySizes(ct []byte, max int) map[int]float64 {
	return EstimateKeySizesSampled(ct, max, DefaultSamplePairs)
}

// EstimateKeySizesSampled partitions ct into consecutive size-byte chunks for
// each candidate size, compares up to maxPairs disjoint adjacent pairs (1 vs
// 2, 3 vs 4, ...; maxPairs <= 0 compares every available pair) and records
// the average Hamming distance per pair normalized by size. Smaller averages
// mark more probable key lengths. Sizes for which the ciphertext yields no
// complete pair are left out of the table.
func EstimateKeySizesSampled(ct []byte, max, maxPairs int) map[int]float64 {
	table := make(map[int]float64)
	for size := 1; size <= max; size++ {
		npairs := len(ct) / size / 2
		if maxPairs > 0 && npairs > maxPairs {
			npairs = maxPairs
		}
		if npairs == 0 {
			log.Verbosef("xorcrack: insufficient data for keysize %d\n", size)
			continue
		}

		var sum float64
		for p := 0; p < npairs; p++ {
			a := ct[2*p*size : (2*p+1)*size]
			b := ct[(2*p+1)*size : (2*p+2)*size]
			sum += float64(HammingDistance(a, b)) / float64(size)
		}
		table[size] = sum / float64(npairs)
	}

	return table
}

//KeySizeCandidate : one candidate key length with its normalized distance
type KeySizeCandidate struct {
	Size     int
	Distance float64
}

// RankKeySizes flattens an estimator table into a slice sorted by ascending
// distance, smallest (most probable) first. Equal distances order by size so
// the ranking is deterministic. Callers should examine the few smallest
// entries rather than trust the single minimum; sampling noise is significant
// on short ciphertexts.
func RankKeySizes(table map[int]float64) []KeySizeCandidate {
	out := make([]KeySizeCandidate, 0, len(table))
	for s, d := range table {
		out = append(out, KeySizeCandidate{Size: s, Distance: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Size < out[j].Size
	})
	return out
}
