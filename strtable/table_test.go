package strtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netuno/strintern"
)

func TestSetGetRoundTrip(t *testing.T) {
	tbl := New()
	intern := &strintern.Table{}
	k := intern.Copy("alpha")

	isNew := tbl.Set(k, 42)
	assert.True(t, isNew)

	v, ok := tbl.Get(k)
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestSetExistingKeyOverwrites(t *testing.T) {
	tbl := New()
	intern := &strintern.Table{}
	k := intern.Copy("alpha")

	tbl.Set(k, 1)
	isNew := tbl.Set(k, 2)
	assert.False(t, isNew)

	v, _ := tbl.Get(k)
	assert.Equal(t, 2, v)
}

func TestDeleteLeavesTombstoneForProbing(t *testing.T) {
	tbl := New()
	intern := &strintern.Table{}
	a := intern.Copy("a")
	b := intern.Copy("b")

	tbl.Set(a, 1)
	tbl.Set(b, 2)

	v, ok := tbl.Delete(a)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = tbl.Get(a)
	assert.False(t, ok)

	v, ok = tbl.Get(b)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestGrowthPreservesAllEntries(t *testing.T) {
	tbl := New()
	intern := &strintern.Table{}
	keys := make([]*strintern.String, 0, 50)
	for i := 0; i < 50; i++ {
		k := intern.Copy(string(rune('a')) + string(rune(i)))
		keys = append(keys, k)
		tbl.Set(k, i)
	}
	assert.Equal(t, 50, tbl.Len())
	for i, k := range keys {
		v, ok := tbl.Get(k)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestForAllVisitsEveryLiveEntry(t *testing.T) {
	tbl := New()
	intern := &strintern.Table{}
	tbl.Set(intern.Copy("x"), 1)
	tbl.Set(intern.Copy("y"), 2)
	tbl.Set(intern.Copy("z"), 3)

	seen := map[string]any{}
	tbl.ForAll(func(key *strintern.String, value any) {
		seen[key.Chars()] = value
	})
	assert.Equal(t, map[string]any{"x": 1, "y": 2, "z": 3}, seen)
}

func TestAddAllCopiesEntries(t *testing.T) {
	intern := &strintern.Table{}
	from := New()
	from.Set(intern.Copy("k1"), 1)
	from.Set(intern.Copy("k2"), 2)

	to := New()
	to.AddAll(from)
	assert.Equal(t, 2, to.Len())
}

func TestFindStringByRawContent(t *testing.T) {
	tbl := New()
	intern := &strintern.Table{}
	k := intern.Copy("needle")
	tbl.Set(k, "found")

	got := tbl.FindString("needle", k.Hash())
	require.NotNil(t, got)
	assert.True(t, strintern.Equals(k, got))

	assert.Nil(t, tbl.FindString("missing", 12345))
}

func TestGetOnEmptyTable(t *testing.T) {
	tbl := New()
	intern := &strintern.Table{}
	_, ok := tbl.Get(intern.Copy("anything"))
	assert.False(t, ok)
}
