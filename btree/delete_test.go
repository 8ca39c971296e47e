package btree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algowalk/algowalk/btree"
)

func kindsOf(steps []btree.Step) []btree.StepKind {
	out := make([]btree.StepKind, 0, len(steps))
	for _, st := range steps {
		out = append(out, st.Kind)
	}

	return out
}

func TestDelete_EmptyTree(t *testing.T) {
	tr, err := btree.NewTree()
	require.NoError(t, err)

	steps, err := btree.Delete(tr, 5)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, btree.StepEmptyTree, steps[0].Kind)
}

func TestDelete_NotFound(t *testing.T) {
	s := build(t, 3, 10, 20, 30)
	before := s.Keys()

	r, err := s.Delete(99)
	require.NoError(t, err)
	steps := r.Drain()

	last := steps[len(steps)-1]
	assert.Equal(t, btree.StepNotFound, last.Kind)
	assert.Equal(t, before, s.Keys())
}

func TestDelete_LeafNoUnderflow(t *testing.T) {
	s := build(t, 4, 10, 20, 30) // single leaf [10 20 30]

	r, err := s.Delete(20)
	require.NoError(t, err)
	steps := r.Drain()

	assert.Contains(t, kindsOf(steps), btree.StepRemove)
	assert.Equal(t, []int64{10, 30}, s.Keys())
	validateFinal(t, steps)
}

func TestDelete_BorrowRight(t *testing.T) {
	// Order 3: inserts 1..4 leave root [2] with leaves [1] and [3 4].
	// Deleting 1 underflows the left leaf; its only sibling (right) can
	// spare a key, so the separator rotates down and 3 rotates up.
	s := build(t, 3, 1, 2, 3, 4)

	r, err := s.Delete(1)
	require.NoError(t, err)
	steps := r.Drain()

	kinds := kindsOf(steps)
	assert.Contains(t, kinds, btree.StepBorrowRight)
	assert.NotContains(t, kinds, btree.StepBorrowLeft)
	assert.NotContains(t, kinds, btree.StepMerge)

	assert.Equal(t, []int64{2, 3, 4}, s.Keys())
	root := s.Tree().Node(s.Tree().Root())
	assert.Equal(t, []int64{3}, root.Keys)
	validateFinal(t, steps)
	checkStepStructure(t, steps)
}

func TestDelete_BorrowLeftPreferred(t *testing.T) {
	// Order 3: inserts 4,3,2,1 leave root [3] with leaves [1 2] and [4].
	// Deleting 4 underflows the right leaf; the left sibling can spare a
	// key, and the policy tries left before right.
	s := build(t, 3, 4, 3, 2, 1)

	r, err := s.Delete(4)
	require.NoError(t, err)
	steps := r.Drain()

	kinds := kindsOf(steps)
	assert.Contains(t, kinds, btree.StepBorrowLeft)
	assert.NotContains(t, kinds, btree.StepMerge)

	assert.Equal(t, []int64{1, 2, 3}, s.Keys())
	root := s.Tree().Node(s.Tree().Root())
	assert.Equal(t, []int64{2}, root.Keys)
	validateFinal(t, steps)
}

func TestDelete_MergeAndShrink(t *testing.T) {
	// Order 3: root [2] with leaves [1] and [3]. Deleting 3 cannot
	// borrow (the sibling sits at minimum), so the leaves merge around
	// the separator and the root collapses away.
	s := build(t, 3, 1, 2, 3)

	r, err := s.Delete(3)
	require.NoError(t, err)
	steps := r.Drain()

	kinds := kindsOf(steps)
	assert.Contains(t, kinds, btree.StepMerge)
	assert.Contains(t, kinds, btree.StepShrink)

	m := s.Metrics()
	assert.Equal(t, 1, m.Merges)
	assert.Equal(t, 1, m.Height)
	assert.Equal(t, []int64{1, 2}, s.Keys())
	validateFinal(t, steps)
}

func TestDelete_InternalKeySubstitution(t *testing.T) {
	// Order 3: root [2] with leaves [1] and [3]. Deleting the internal
	// key 2 substitutes its in-order predecessor 1, then repairs the
	// leaf that lost it (merge, root collapse).
	s := build(t, 3, 1, 2, 3)

	r, err := s.Delete(2)
	require.NoError(t, err)
	steps := r.Drain()

	kinds := kindsOf(steps)
	assert.Contains(t, kinds, btree.StepSubstitute)
	assert.Equal(t, []int64{1, 3}, s.Keys())
	validateFinal(t, steps)
	checkStepStructure(t, steps)
}

func TestDelete_LastKeyEmptiesTree(t *testing.T) {
	s := build(t, 3, 1)

	r, err := s.Delete(1)
	require.NoError(t, err)
	steps := r.Drain()

	assert.Contains(t, kindsOf(steps), btree.StepShrink)
	assert.True(t, s.Tree().Empty())
	assert.Equal(t, btree.Metrics{}, s.Metrics())
}

// TestDelete_Order4Scenario builds the fifteen-key order-4 tree and
// removes five keys. Every removal lands (ten keys remain), the final
// tree is valid, and the cumulative counters never decrease. Note the
// borrow-before-merge policy resolves every underflow here by
// redistribution, so the merge counter stays where it was.
func TestDelete_Order4Scenario(t *testing.T) {
	s, err := btree.NewSession(btree.WithOrder(4))
	require.NoError(t, err)

	buildKeys := []int64{10, 20, 30, 40, 50, 60, 70, 80, 5, 15, 25, 35, 45, 55, 65}
	for _, k := range buildKeys {
		r, err := s.Insert(k)
		require.NoError(t, err)
		validateFinal(t, r.Drain())
	}
	require.Equal(t, 15, s.Metrics().TotalKeys)

	prev := s.Metrics()
	for _, k := range []int64{30, 70, 50, 10, 60} {
		r, err := s.Delete(k)
		require.NoError(t, err)
		steps := r.Drain()
		validateFinal(t, steps)
		checkStepStructure(t, steps)

		m := s.Metrics()
		assert.GreaterOrEqual(t, m.Splits, prev.Splits, "splits are monotonic")
		assert.GreaterOrEqual(t, m.Merges, prev.Merges, "merges are monotonic")
		prev = m
	}

	assert.Equal(t, 10, s.Metrics().TotalKeys)
	assert.NoError(t, btree.Validate(s.Tree()))
}

// TestDelete_MergeCascade drives a deletion whose merge propagates a
// level up, shrinking a three-level tree to two.
func TestDelete_MergeCascade(t *testing.T) {
	// Order 3, keys 1..7: root [4] over [2] and [6], leaves [1] [3] [5]
	// [7]. Deleting 7 merges [5]+6+[] into [5 6]... the right internal
	// node then underflows and the cascade reaches the root.
	s := build(t, 3, 1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, 3, s.Metrics().Height)

	r, err := s.Delete(7)
	require.NoError(t, err)
	steps := r.Drain()

	assert.Contains(t, kindsOf(steps), btree.StepMerge)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, s.Keys())
	assert.GreaterOrEqual(t, s.Metrics().Merges, 1)
	validateFinal(t, steps)
	checkStepStructure(t, steps)
}

func TestInsertThenDelete_RoundTrip(t *testing.T) {
	s := build(t, 3, 10, 20, 30, 40, 50)
	before := s.Keys()

	r, err := s.Insert(25)
	require.NoError(t, err)
	validateFinal(t, r.Drain())

	r, err = s.Delete(25)
	require.NoError(t, err)
	validateFinal(t, r.Drain())

	assert.Equal(t, before, s.Keys())
}

func TestDelete_DrainEverything(t *testing.T) {
	// Insert 1..12 at order 3, then delete all twelve in a scrambled
	// order; the tree must end empty with every intermediate state valid.
	s, err := btree.NewSession(btree.WithOrder(3))
	require.NoError(t, err)
	for k := int64(1); k <= 12; k++ {
		r, err := s.Insert(k)
		require.NoError(t, err)
		r.Drain()
	}

	for _, k := range []int64{6, 1, 12, 7, 3, 9, 2, 11, 5, 8, 10, 4} {
		r, err := s.Delete(k)
		require.NoError(t, err)
		steps := r.Drain()
		validateFinal(t, steps)
		checkStepStructure(t, steps)
	}

	assert.True(t, s.Tree().Empty())
	assert.Nil(t, s.Keys())
}
