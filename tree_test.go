package ranktree

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inorder[K cmp.Ordered, V any](n *Node[K, V]) []K {
	if n == nil {
		return nil
	}
	keys := inorder(n.left)
	keys = append(keys, n.key)
	keys = append(keys, inorder(n.right)...)
	return keys
}

func checkRedBlack[K cmp.Ordered, V any](t *testing.T, root *Node[K, V]) {
	t.Helper()
	require.False(t, root.isRed(), "root must be black")
	_, err := blackHeight(root)
	require.NoError(t, err)
}

func blackHeight[K cmp.Ordered, V any](n *Node[K, V]) (int, error) {
	if n == nil {
		return 1, nil
	}
	if n.isRed() {
		if n.left.isRed() || n.right.isRed() {
			return 0, errRedRed
		}
	}
	lh, err := blackHeight(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := blackHeight(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errBlackHeight
	}
	if n.isRed() {
		return lh, nil
	}
	return lh + 1, nil
}

type invariantError string

func (e invariantError) Error() string { return string(e) }

const (
	errRedRed      = invariantError("red node with a red child")
	errBlackHeight = invariantError("unequal black height across subtrees")
)

func TestScenarioS1BasicInsertRewind(t *testing.T) {
	tr := New[string, int]()
	tr.Set("1", 100)
	tr.Set("1", 200)
	require.NotNil(t, tr.Search("1"))
	assert.Equal(t, 200, tr.Search("1").Value())

	require.NoError(t, tr.Rewind(1))
	assert.Equal(t, 100, tr.Search("1").Value())

	require.NoError(t, tr.Rewind(1))
	assert.Nil(t, tr.Search("1"))
}

func TestScenarioS2InterleavedKeys(t *testing.T) {
	tr := New[string, int]()
	tr.Set("2", 300)
	tr.Set("1", 400)
	assert.Equal(t, 400, tr.Search("1").Value())
	assert.Equal(t, 300, tr.Search("2").Value())

	require.NoError(t, tr.Rewind(2))
	assert.Nil(t, tr.Search("1"))
	assert.Nil(t, tr.Search("2"))
}

func TestScenarioS3SortedAfterMixedInserts(t *testing.T) {
	tr := New[int, int]()
	for _, k := range []int{16, 8, 12, 4, 24, 20, 28} {
		tr.Set(k, k*10)
		checkRedBlack(t, tr.reg.currentRoot())
	}
	assert.Equal(t, []int{4, 8, 12, 16, 20, 24, 28}, inorder[int, int](tr.reg.currentRoot()))

	require.NoError(t, tr.Rewind(4))
	assert.Equal(t, []int{8, 12, 16}, inorder[int, int](tr.reg.currentRoot()))
}

func TestScenarioS4DeleteHalfThenRewind(t *testing.T) {
	tr := New[int, int]()
	for _, k := range []int{16, 8, 12, 4, 24, 20, 28} {
		tr.Set(k, k)
	}

	for _, k := range []int{8, 24, 16, 4} {
		tr.Delete(k)
		checkRedBlack(t, tr.reg.currentRoot())
		got := inorder[int, int](tr.reg.currentRoot())
		assert.IsIncreasing(t, got)
	}
	assert.Equal(t, []int{12, 20, 28}, inorder[int, int](tr.reg.currentRoot()))

	require.NoError(t, tr.Rewind(4))
	assert.Equal(t, []int{4, 8, 12, 16, 20, 24, 28}, inorder[int, int](tr.reg.currentRoot()))
}

func TestScenarioS5DeleteReinsertAcrossRewind(t *testing.T) {
	tr := New[int, int]()
	tr.Set(1, 1)
	tr.Set(2, 2)
	tr.Delete(1)
	tr.Delete(2)

	require.NoError(t, tr.Rewind(1))
	assert.Nil(t, tr.Search(1))
	require.NotNil(t, tr.Search(2))
	assert.Equal(t, 2, tr.Search(2).Value())

	tr.Set(2, 22)
	require.NoError(t, tr.Rewind(4))
	assert.Nil(t, tr.Search(1))
	assert.Nil(t, tr.Search(2))

	tr.Set(2, 222)
	assert.Equal(t, 222, tr.Search(2).Value())
}

func TestMinMax(t *testing.T) {
	tr := New[int, int]()
	assert.Nil(t, tr.Min())
	assert.Nil(t, tr.Max())
	for _, k := range []int{5, 1, 9, 3, 7} {
		tr.Set(k, k)
	}
	assert.Equal(t, 1, tr.Min().Key())
	assert.Equal(t, 9, tr.Max().Key())
}

func TestRewindRejectsOutOfRange(t *testing.T) {
	tr := New[int, int]()
	tr.Set(1, 1)
	require.ErrorIs(t, tr.Rewind(0), ErrInvalidRewind)
	require.ErrorIs(t, tr.Rewind(2), ErrInvalidRewind)
}

func TestOlderVersionUnaffectedByLaterMutation(t *testing.T) {
	tr := New[int, int]()
	tr.Set(1, 1)
	v1Root := tr.reg.currentRoot()
	tr.Set(2, 2)
	assert.Equal(t, 1, v1Root.Key())
	assert.Nil(t, v1Root.right)
}

func TestFuzzRandomOperationsStaySortedAndBalanced(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tr := New[int, int]()
	present := map[int]bool{}

	for i := 0; i < 500; i++ {
		k := rng.Intn(64)
		if rng.Intn(3) == 0 && present[k] {
			tr.Delete(k)
			delete(present, k)
		} else {
			tr.Set(k, k)
			present[k] = true
		}
		checkRedBlack(t, tr.reg.currentRoot())
		assert.IsIncreasing(t, inorder[int, int](tr.reg.currentRoot()))
	}
}
