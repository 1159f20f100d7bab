package xorcrack

import (
	"math"
	"strings"
)

type langmap map[byte]float64

// englishFreq maps the 27 reference symbols (a-z plus space) to their
// expected relative frequency in English prose, in percent of all characters
// including spaces. The values sum to approximately 100.
var englishFreq = langmap{
	'a': 6.672, 'b': 1.219, 'c': 2.273, 'd': 3.475, 'e': 10.377,
	'f': 1.820, 'g': 1.646, 'h': 4.979, 'i': 5.691, 'j': 0.125,
	'k': 0.631, 'l': 3.288, 'm': 1.966, 'n': 5.514, 'o': 6.133,
	'p': 1.576, 'q': 0.078, 'r': 4.891, 's': 5.169, 't': 7.399,
	'u': 2.253, 'v': 0.799, 'w': 1.928, 'x': 0.123, 'y': 1.613,
	'z': 0.060, ' ': 18.300,
}

// scoreChar scores one reference symbol given its observed relative frequency
// (percent) within the recognized subset of the input. Symbols outside the
// reference table contribute nothing.
func scoreChar(c byte, observed float64) float64 {
	expected, ok := englishFreq[lowerByte(c)]
	if !ok {
		return 0
	}
	return math.Abs(expected-observed) * 10
}

// ScoreText is the character-frequency score of s. Input bytes are
// case-folded and filtered to the reference alphabet; each symbol that
// appears contributes scoreChar of its observed frequency within that
// filtered subset, and the sum is weighted by the proportion of input bytes
// that were recognizable at all, so symbol- or control-heavy strings are
// driven toward zero.
//
// The number is only a ranking signal relative to other strings scored the
// same way, never an absolute measure.
func ScoreText(s string) float64 {
	if len(s) == 0 {
		return 0
	}

	counts := make(map[byte]int)
	recognized := 0
	for i := 0; i < len(s); i++ {
		c := lowerByte(s[i])
		if _, ok := englishFreq[c]; ok {
			counts[c]++
			recognized++
		}
	}
	if recognized == 0 {
		return 0
	}

	var sum float64
	for c, n := range counts {
		sum += scoreChar(c, float64(n)/float64(recognized)*100)
	}

	return sum * float64(recognized) / float64(len(s))
}

// WordBonus scans words in the given order (conventionally lowercase and
// sorted longest-first, see LoadWordList) and adds 3*e^len(word) for every
// entry found in a working copy of s. Matching is case-sensitive: a decode
// whose letters carry the wrong case earns no bonus. Each match consumes its
// occurrence from the copy so one slice of text cannot satisfy two dictionary
// entries. The exponential weight makes long real words dominate over chance
// short runs. An empty word list yields 0.
func WordBonus(s string, words []string) float64 {
	work := s
	var bonus float64
	for _, w := range words {
		if w == "" {
			continue
		}
		if strings.Contains(work, w) {
			bonus += 3 * math.Exp(float64(len(w)))
			work = strings.Replace(work, w, "", 1)
		}
	}
	return bonus
}

// ScoreTextWords combines ScoreText and WordBonus by plain addition. The two
// terms are not on a common scale (one is a discrepancy sum, the other an
// exponential bonus); the blend is meaningful only for ranking candidates
// scored with the identical word list.
func ScoreTextWords(s string, words []string) float64 {
	return ScoreText(s) + WordBonus(s, words)
}

// englishness is the total reference-frequency mass of a byte sequence:
// every byte contributes the expected frequency of its case-folded self, or
// nothing when outside the reference alphabet. Unlike ScoreText it is
// monotone in "looks like English".
func englishness(in []byte) float64 {
	var sum float64
	for _, c := range in {
		sum += englishFreq[lowerByte(c)]
	}
	return sum
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
