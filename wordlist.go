package xorcrack

import (
	"bufio"
	"os"
	"sort"
	"strings"

	"github.com/usedbytes/log"
)

// LoadWordList reads one word per line from path, lowercases them and sorts
// longest-first so multi-word dictionary matches are not shadowed by shorter
// substrings. A read failure is reported on the log and yields an empty list
// rather than an error; the scorer tolerates an empty dictionary (the word
// bonus is simply 0).
func LoadWordList(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		log.Println("xorcrack: word list unavailable:", err)
		return nil
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		log.Println("xorcrack: reading word list:", err)
		return nil
	}

	sort.SliceStable(words, func(i, j int) bool {
		return len(words[i]) > len(words[j])
	})
	return words
}
