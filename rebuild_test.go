package ostree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestFromSortedShape(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := FromSorted([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, "[3,1,2,4,5]", tree.Render(PreOrder))
	require.Equal(t, 5, tree.Len())
	require.NoError(t, tree.Check())
	require.True(t, tree.IsBalanced())
}

func TestRebalanceMatchesFromSorted(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := fromInserts(4, 2, 1, 3, 5)
	tree.Rebalance()
	built, err := FromSorted([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	for _, o := range []Order{PreOrder, InOrder, PostOrder} {
		require.Equal(t, built.Render(o), tree.Render(o), "order %s", o)
	}
	require.NoError(t, tree.Check())
}

func TestRebalanceDegenerateChain(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 1000; i++ {
		tree.Insert(i)
	}
	require.Equal(t, 1000, tree.Height())
	require.False(t, tree.IsBalanced())
	tree.Rebalance()
	require.True(t, tree.IsBalanced())
	require.Equal(t, 10, tree.Height())
	require.Equal(t, 1000, tree.Len())
	require.NoError(t, tree.Check())
}

func TestFromSortedRejectsIllegalInput(t *testing.T) {
	for name, keys := range map[string][]int{
		"nil":       nil,
		"empty":     {},
		"unsorted":  {1, 3, 2},
		"duplicate": {1, 2, 2, 3},
	} {
		tree, err := FromSorted(keys)
		if !errors.Is(err, ErrIllegalArguments) {
			t.Errorf("%s: expected ErrIllegalArguments, got %v", name, err)
		}
		if tree != nil {
			t.Errorf("%s: expected no tree on error", name)
		}
	}
}

func TestFromSortedRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for n := 1; n <= 64; n++ {
		keys := make([]int, 0, n)
		next := rnd.Intn(10)
		for _i := 0; _i < n; _i++ {
			keys = append(keys, next)
			next += 1 + rnd.Intn(5)
		}
		tree, err := FromSorted(keys)
		require.NoError(t, err)
		require.Equal(t, keys, tree.Keys())
		require.True(t, tree.IsBalanced(), "n=%d", n)
		require.NoError(t, tree.Check())
		keys[0] = -1 // input is not retained
		require.NotEqual(t, -1, tree.Keys()[0])
	}
}

// mutateRandomly applies a random mix of inserts, deletes and rebalances to
// tree and a reference set, checking invariants after every step.
func mutateRandomly(t *testing.T, rnd *rand.Rand, tree *Tree[int], ref map[int]bool, steps int) {
	t.Helper()
	for _i := 0; _i < steps; _i++ {
		key := rnd.Intn(200)
		switch op := rnd.Intn(10); {
		case op < 6:
			require.Equal(t, !ref[key], tree.Insert(key))
			ref[key] = true
		case op < 9:
			require.Equal(t, ref[key], tree.Delete(key))
			delete(ref, key)
		default:
			tree.Rebalance()
			require.True(t, tree.IsBalanced())
		}
		require.NoError(t, tree.Check())
		require.Equal(t, len(ref), tree.Len())
	}
}

func sortedKeys(ref map[int]bool) []int {
	keys := make([]int, 0, len(ref))
	for k := range ref {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func TestRandomMutationsKeepInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	tree := New[int]()
	ref := make(map[int]bool)
	mutateRandomly(t, rnd, tree, ref, 2000)
	keys := sortedKeys(ref)
	require.Equal(t, keys, tree.Keys())
	for k, key := range keys {
		sel, err := tree.Select(k)
		require.NoError(t, err)
		require.Equal(t, key, sel)
		require.Equal(t, k, tree.Rank(sel))
	}
	for _i := 0; _i < 100; _i++ {
		lo, hi := rnd.Intn(220)-10, rnd.Intn(220)-10
		expected := 0
		for _, key := range keys {
			if lo <= key && key <= hi {
				expected++
			}
		}
		require.Equal(t, expected, tree.CountInRange(lo, hi), "range [%d,%d]", lo, hi)
	}
}

func TestDeleteAllInRandomOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	keys := rnd.Perm(300)
	tree := New[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	ref := make(map[int]bool, len(keys))
	for _, k := range keys {
		ref[k] = true
	}
	rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for _, k := range keys {
		require.True(t, tree.Delete(k))
		delete(ref, k)
		require.NoError(t, tree.Check())
		require.Equal(t, sortedKeys(ref), tree.Keys())
	}
	require.True(t, tree.IsEmpty())
	require.Equal(t, "[empty]", tree.Render(PostOrder))
}
