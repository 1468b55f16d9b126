package cluster_test

import (
	"testing"

	"github.com/katalvlaran/lvlink/cluster"
	"github.com/katalvlaran/lvlink/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTopK_Invalid(t *testing.T) {
	for _, k := range []int{0, -3} {
		_, err := cluster.NewTopK(k)
		assert.ErrorIs(t, err, cluster.ErrInvalidK)
	}
}

// TestTopK_KeepsLargest offers values in an unfavourable order and checks
// only the k largest survive, duplicates included.
func TestTopK_KeepsLargest(t *testing.T) {
	top, err := cluster.NewTopK(3)
	require.NoError(t, err)

	for _, v := range []int{1, 9, 2, 5, 5, 3, 1, 8} {
		top.Offer(v)
		assert.LessOrEqual(t, top.Len(), 3)
	}
	assert.Equal(t, []int{9, 8, 5}, top.Values())
	assert.Equal(t, 360, top.Product())
}

// TestTopK_MissingSlotsAreOne checks the multiplicative identity for short inputs.
func TestTopK_MissingSlotsAreOne(t *testing.T) {
	top, err := cluster.NewTopK(3)
	require.NoError(t, err)
	assert.Equal(t, 1, top.Product())
	assert.Empty(t, top.Values())

	top.Offer(4)
	top.Offer(6)
	assert.Equal(t, 24, top.Product())
	assert.Equal(t, []int{6, 4}, top.Values())
}

// TestAnalyze_CountsEachRootOnce builds components of sizes 4, 3, 3, 1, 1 and
// checks equal-size components are still counted separately.
func TestAnalyze_CountsEachRootOnce(t *testing.T) {
	f, err := dsu.New(12)
	require.NoError(t, err)
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 5}, {5, 6}, {7, 8}, {8, 9}} {
		_, _, err := f.Union(p[0], p[1])
		require.NoError(t, err)
	}

	res, err := cluster.Analyze(f, cluster.DefaultK)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 3}, res.Sizes)
	assert.Equal(t, 36, res.Product)
	assert.Equal(t, 5, res.Components)
}

func TestAnalyze_Singletons(t *testing.T) {
	f, err := dsu.New(5)
	require.NoError(t, err)

	res, err := cluster.Analyze(f, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, res.Sizes)
	assert.Equal(t, 1, res.Product)
	assert.Equal(t, 5, res.Components)
}

func TestAnalyze_FewerComponentsThanK(t *testing.T) {
	f, err := dsu.New(5)
	require.NoError(t, err)
	_, _, _ = f.Union(0, 1)
	_, _, _ = f.Union(0, 2)
	_, _, _ = f.Union(3, 4)

	res, err := cluster.Analyze(f, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, res.Sizes)
	assert.Equal(t, 6, res.Product)
	assert.Equal(t, 2, res.Components)

	_, err = cluster.Analyze(f, 0)
	assert.ErrorIs(t, err, cluster.ErrInvalidK)
}
