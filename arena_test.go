package rebound

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArena_InsertGet(t *testing.T) {
	var arena Arena[string]

	a := arena.Insert("a")
	b := arena.Insert("b")

	require.True(t, a.Valid())
	require.True(t, b.Valid())
	require.NotEqual(t, a, b)

	require.Equal(t, "a", *arena.Get(a))
	require.Equal(t, "b", *arena.Get(b))
	require.Equal(t, 2, arena.Len())
}

func TestArena_GetStale(t *testing.T) {
	var arena Arena[int]

	h := arena.Insert(1)

	value, ok := arena.Remove(h)
	require.True(t, ok)
	require.Equal(t, 1, value)

	require.Nil(t, arena.Get(h))
	require.False(t, arena.Contains(h))
	require.Equal(t, 0, arena.Len())

	_, ok = arena.Remove(h)
	require.False(t, ok)
}

func TestArena_ReuseDoesNotResurrectHandle(t *testing.T) {
	var arena Arena[int]

	first := arena.Insert(1)
	_, ok := arena.Remove(first)
	require.True(t, ok)

	// reuses the slot of the removed value
	second := arena.Insert(2)
	require.Equal(t, first.index(), second.index())
	require.NotEqual(t, first, second)

	require.Nil(t, arena.Get(first))
	require.Equal(t, 2, *arena.Get(second))
}

func TestArena_ZeroHandleInvalid(t *testing.T) {
	var arena Arena[int]
	arena.Insert(1)

	var zero Handle
	require.False(t, zero.Valid())
	require.Nil(t, arena.Get(zero))
}

func TestArena_All(t *testing.T) {
	var arena Arena[int]

	a := arena.Insert(1)
	b := arena.Insert(2)
	c := arena.Insert(3)

	_, ok := arena.Remove(b)
	require.True(t, ok)

	seen := map[Handle]int{}
	for handle, value := range arena.All() {
		seen[handle] = *value
	}

	require.Equal(t, map[Handle]int{a: 1, c: 3}, seen)
}

func TestArena_MutateThroughAll(t *testing.T) {
	var arena Arena[int]

	h := arena.Insert(1)

	for _, value := range arena.All() {
		*value += 10
	}

	require.Equal(t, 11, *arena.Get(h))
}
