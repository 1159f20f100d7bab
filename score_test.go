package xorcrack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreOrdering(t *testing.T) {
	english := "hello world"
	noise := []string{"9[;,1.23,45", "$*(&^$@!as3", "kj12asd89hh"}
	words := []string{"hello", "world"}

	charOnly := ScoreText(english)
	combined := ScoreTextWords(english, words)
	for _, n := range noise {
		require.Greater(t, charOnly, ScoreText(n), "char score vs %q", n)
		require.Greater(t, combined, ScoreTextWords(n, words), "combined score vs %q", n)
	}
}

func TestScoreTextEmpty(t *testing.T) {
	require.Equal(t, 0.0, ScoreText(""))
	// nothing recognizable scores zero outright
	require.Equal(t, 0.0, ScoreText("0123#$%^"))
}

func TestScoreTextCaseFolds(t *testing.T) {
	require.Equal(t, ScoreText("hello world"), ScoreText("HELLO WORLD"))
}

func TestScoreTextProportionFactor(t *testing.T) {
	// same observed distribution, but half the input is unrecognizable, so
	// the score is cut in half
	full := ScoreText("aaaa")
	half := ScoreText("aa!!")
	require.InDelta(t, full/2, half, 1e-9)
}

func TestWordBonus(t *testing.T) {
	words := []string{"world", "hello"}
	want := 3*math.Exp(5) + 3*math.Exp(5)
	require.InDelta(t, want, WordBonus("hello world", words), 1e-9)
}

func TestWordBonusNoReuse(t *testing.T) {
	// "cat" matches once; its occurrence is consumed, not recounted
	require.InDelta(t, 3*math.Exp(3), WordBonus("cat cat", []string{"cat"}), 1e-9)
}

func TestWordBonusConsumesText(t *testing.T) {
	// longest-first ordering: "catalog" swallows its "cat" prefix, and the
	// shorter entry then finds no second occurrence
	words := []string{"catalog", "cat"}
	require.InDelta(t, 3*math.Exp(7), WordBonus("catalog", words), 1e-9)
}

func TestWordBonusCaseSensitive(t *testing.T) {
	// the word list is lowercase by contract; case-flipped text is no match
	words := []string{"hello", "world"}
	require.Equal(t, 0.0, WordBonus("HELLO WORLD", words))
	require.Equal(t, 0.0, WordBonus("heLlo worLd", words))
}

func TestWordBonusEmptyList(t *testing.T) {
	require.Equal(t, 0.0, WordBonus("hello world", nil))
	require.Equal(t, ScoreText("hello world"), ScoreTextWords("hello world", nil))
}
