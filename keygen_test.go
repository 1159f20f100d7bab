package xorcrack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyGenZeroLength(t *testing.T) {
	g := NewKeyGen(0)

	k, ok := g.Next()
	require.True(t, ok)
	require.Empty(t, k)

	_, ok = g.Next()
	require.False(t, ok)
}

func TestKeyGenCardinality(t *testing.T) {
	g := NewKeyGen(2)
	seen := make(map[string]bool)
	for k, ok := g.Next(); ok; k, ok = g.Next() {
		require.Len(t, k, 2)
		require.False(t, seen[string(k)], "duplicate key %v", k)
		seen[string(k)] = true
	}
	require.Len(t, seen, 128*128)
}

func TestKeyGenOrdering(t *testing.T) {
	g := NewKeyGen(2)

	prev, ok := g.Next()
	require.True(t, ok)
	require.Equal(t, []byte{0, 0}, prev)

	count := 1
	for k, ok := g.Next(); ok; k, ok = g.Next() {
		require.Negative(t, bytes.Compare(prev, k), "order broken at %v -> %v", prev, k)
		if count == 128 {
			// first position varies slowest
			require.Equal(t, []byte{1, 0}, k)
		}
		prev = k
		count++
	}
	require.Equal(t, []byte{127, 127}, prev)
}

func TestKeyGenReset(t *testing.T) {
	g := NewKeyGen(1)
	first := make([][]byte, 0, 128)
	for k, ok := g.Next(); ok; k, ok = g.Next() {
		first = append(first, k)
	}
	require.Len(t, first, 128)

	g.Reset()
	second := make([][]byte, 0, 128)
	for k, ok := g.Next(); ok; k, ok = g.Next() {
		second = append(second, k)
	}
	require.Equal(t, first, second)
}

func TestAllKeys(t *testing.T) {
	keys := AllKeys(1)
	require.Len(t, keys, 128)
	for i, k := range keys {
		require.Equal(t, []byte{byte(i)}, k)
	}
}
