// Command xorcrack applies or breaks repeated-key XOR ciphers from the
// command line. With --key it transforms stdin (or a file) under the given
// key; with --crack or --guess it recovers the key and plaintext from
// ciphertext alone.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aldocassola/xorcrack"
	"github.com/p7r0x7/vainpath"
	"github.com/spf13/pflag"
	"github.com/usedbytes/log"
)

const success, failure, invalid = 0, 1, 2

var (
	pKey      = pflag.StringP("key", "k", "", "transform input under this key")
	pHexKey   = pflag.Bool("hex-key", false, "interpret --key as hex bytes")
	pCrack    = pflag.BoolP("crack", "c", false, "recover key and plaintext by exhaustive search")
	pGuess    = pflag.BoolP("guess", "g", false, "recover the key with the per-column attack")
	pMaxSize  = pflag.IntP("max-keysize", "m", 16, "largest key length the estimator considers")
	pKeysize  = pflag.Int("keysize", 0, "fixed key length for --guess (0 = estimate)")
	pWordlist = pflag.StringP("wordlist", "w", "", "dictionary file for scoring, one word per line")
	pHexOut   = pflag.BoolP("hex", "x", false, "hex-encode the output")
	pVerbose  = pflag.BoolP("verbose", "v", false, "print advisory diagnostics")
	pHelp     = pflag.BoolP("help", "h", false, "print this help menu")
)

func main() { os.Exit(program()) }

func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "xorcrack"
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	fmt.Fprint(os.Stderr, "Repeated-key XOR transform and cryptanalysis.\n\n"+
		"Usage:\n"+
		"  "+name+" [-vx] -k KEY [--hex-key] [PATH]\n"+
		"  "+name+" [-vx] -c|-g [-m <uint>] [--keysize <uint>] [-w PATH] [PATH]\n\n"+
		"Options:\n")
	pflag.PrintDefaults()
	fmt.Fprint(os.Stderr, "\nWith no PATH, input is read from "+os.Stdin.Name()+".\n")
}

func program() int {
	pflag.Parse()
	log.SetUseLog(false)
	log.SetVerbose(*pVerbose)

	if *pHelp {
		help()
		return success
	}

	in := io.Reader(os.Stdin)
	if pflag.NArg() > 0 {
		f, err := os.Open(pflag.Arg(0))
		if err != nil {
			log.Println(err)
			return failure
		}
		defer f.Close()
		in = f
	}

	switch {
	case *pCrack || *pGuess:
		return crack(in)
	case *pKey != "":
		return transform(in)
	}
	help()
	return invalid
}

func transform(in io.Reader) int {
	key := []byte(*pKey)
	if *pHexKey {
		var err error
		if key, err = hex.DecodeString(*pKey); err != nil {
			log.Println("invalid hex key:", err)
			return invalid
		}
	}

	out, err := xorcrack.XORReader(in, key)
	if err != nil {
		log.Println(err)
		return failure
	}
	return emit(out)
}

func crack(in io.Reader) int {
	ct, err := io.ReadAll(in)
	if err != nil {
		log.Println(err)
		return failure
	}

	var words []string
	if *pWordlist != "" {
		words = xorcrack.LoadWordList(*pWordlist)
	}

	var key, pt []byte
	if *pGuess {
		size := *pKeysize
		if size == 0 {
			ranked := xorcrack.RankKeySizes(xorcrack.EstimateKeySizes(ct, *pMaxSize))
			if len(ranked) == 0 {
				log.Println("ciphertext too short to estimate a key length")
				return failure
			}
			size = ranked[0].Size
		}
		if key = xorcrack.GuessKey(ct, size); key == nil {
			log.Println("ciphertext too short for keysize", size)
			return failure
		}
		if pt, err = xorcrack.XORReader(bytes.NewReader(ct), key); err != nil {
			log.Println(err)
			return failure
		}
	} else {
		res, ok := xorcrack.CrackRepeatedXOR(ct, *pMaxSize, words)
		if !ok {
			log.Println("no candidate key could be evaluated")
			return failure
		}
		key, pt = res.Key, res.Plaintext
	}

	fmt.Fprintf(os.Stderr, "key: %q (hex %s)\n", key, hex.EncodeToString(key))
	return emit(pt)
}

func emit(out []byte) int {
	if *pHexOut {
		fmt.Println(hex.EncodeToString(out))
		return success
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Println(err)
		return failure
	}
	return success
}
