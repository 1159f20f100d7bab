package xorcrack

import (
	"bytes"
	"runtime"
	"sync"
)

// topKeySizes bounds how many estimator candidates the full crack sweeps.
const topKeySizes = 3

//CrackResult : the best decode found by a search
type CrackResult struct {
	Key       []byte
	Plaintext []byte
	Score     float64
}

// CrackRepeatedXOR recovers the key and plaintext of a repeated-key XOR
// ciphertext with no prior knowledge of the key: it ranks candidate key
// lengths up to maxKeySize, exhaustively sweeps the key space of the few most
// probable lengths and keeps the highest-scoring decode. words may be nil;
// a dictionary sharpens the ranking considerably. Returns false when no
// candidate could be evaluated (empty ciphertext, or maxKeySize < 1).
//
// Cost is dominated by the sweep: 128^length decodes per candidate length.
// Lengths beyond 3 are impractical here; use GuessKey for those.
func CrackRepeatedXOR(ct []byte, maxKeySize int, words []string) (CrackResult, bool) {
	ranked := RankKeySizes(EstimateKeySizes(ct, maxKeySize))
	if len(ranked) > topKeySizes {
		ranked = ranked[:topKeySizes]
	}

	var best CrackResult
	found := false
	for _, c := range ranked {
		res, ok := BruteForceKeySize(ct, c.Size, words)
		if !ok {
			continue
		}
		if !found || res.Score > best.Score {
			best, found = res, true
		}
	}
	return best, found
}

// BruteForceKeySize decodes ct under every key of exactly size bytes and
// returns the highest-scoring result. Candidates are independent, so the
// decode-and-score work is spread over one worker per CPU; the generator
// stays sequential and single-threaded. Score ties break toward the
// lexicographically smallest key so the result is deterministic.
func BruteForceKeySize(ct []byte, size int, words []string) (CrackResult, bool) {
	if size < 1 {
		return CrackResult{}, false
	}

	keys := make(chan []byte, 1024)
	go func() {
		defer close(keys)
		g := NewKeyGen(size)
		for k, ok := g.Next(); ok; k, ok = g.Next() {
			keys <- k
		}
	}()

	workers := runtime.NumCPU()
	results := make(chan CrackResult, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			var best CrackResult
			seen := false
			for k := range keys {
				pt := xorCycle(ct, k)
				s := ScoreTextWords(string(pt), words)
				if !seen || s > best.Score ||
					(s == best.Score && bytes.Compare(k, best.Key) < 0) {
					best = CrackResult{Key: k, Plaintext: pt, Score: s}
					seen = true
				}
			}
			if seen {
				results <- best
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var best CrackResult
	found := false
	for r := range results {
		if !found || r.Score > best.Score ||
			(r.Score == best.Score && bytes.Compare(r.Key, best.Key) < 0) {
			best, found = r, true
		}
	}
	return best, found
}

// GuessKey recovers a key of a known (or estimated) length by solving each
// key byte independently: byte i of the key encrypts ciphertext positions
// i, i+keysize, i+2*keysize, ..., so that column is a single-byte XOR
// cryptogram on its own. Far cheaper than the exhaustive sweep, at the cost
// of needing enough ciphertext per column for the frequency model to bite.
func GuessKey(ct []byte, keysize int) []byte {
	if keysize < 1 || len(ct) < keysize {
		return nil
	}

	key := make([]byte, keysize)
	for col := 0; col < keysize; col++ {
		var column []byte
		for i := col; i < len(ct); i += keysize {
			column = append(column, ct[i])
		}
		k, _, _ := findSingleKeyXOR(column)
		key[col] = k
	}
	return key
}

// findSingleKeyXOR tries all 256 single-byte keys against in and returns the
// key, decode and score of the candidate with the most reference-frequency
// mass. The discrepancy score is no use here: it can reward fully-recognized
// but badly skewed decodes, while englishness is monotone in English content.
func findSingleKeyXOR(in []byte) (byte, []byte, float64) {
	var bestKey byte
	var bestPT []byte
	bestScore := -1.0
	for k := 0; k < 256; k++ {
		pt := xorCycle(in, []byte{byte(k)})
		if s := englishness(pt); s > bestScore {
			bestKey, bestPT, bestScore = byte(k), pt, s
		}
	}
	return bestKey, bestPT, bestScore
}
