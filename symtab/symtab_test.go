package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netuno/strintern"
)

func TestInsertAndLookupCurrentScope(t *testing.T) {
	intern := &strintern.Table{}
	tbl := New()
	name := intern.Copy("x")

	ok := tbl.Insert(&Entry{Name: name, Kind: KindVariable})
	require.True(t, ok)

	e, found := tbl.LookupCurrent(name)
	require.True(t, found)
	assert.True(t, e.Kind.Has(KindVariable))
}

func TestInsertDuplicateRejected(t *testing.T) {
	intern := &strintern.Table{}
	tbl := New()
	name := intern.Copy("x")

	require.True(t, tbl.Insert(&Entry{Name: name, Kind: KindVariable}))
	assert.False(t, tbl.Insert(&Entry{Name: name, Kind: KindVariable}))
}

func TestWeakEntryPromotedByStrongInsert(t *testing.T) {
	intern := &strintern.Table{}
	tbl := New()
	name := intern.Copy("f")

	require.True(t, tbl.Insert(&Entry{Name: name, Kind: KindFunction | KindWeak}))
	e, _ := tbl.LookupCurrent(name)
	assert.True(t, e.Kind.Has(KindWeak))

	require.True(t, tbl.Insert(&Entry{Name: name, Kind: KindFunction, Payload: "addr:42"}))
	e, _ = tbl.LookupCurrent(name)
	assert.False(t, e.Kind.Has(KindWeak))
	assert.Equal(t, "addr:42", e.Payload)
}

func TestParentChainLookup(t *testing.T) {
	intern := &strintern.Table{}
	tbl := New()
	outer := intern.Copy("outer")
	require.True(t, tbl.Insert(&Entry{Name: outer, Kind: KindVariable}))

	tbl.PushScope()
	inner := intern.Copy("inner")
	require.True(t, tbl.Insert(&Entry{Name: inner, Kind: KindVariable}))

	_, foundInner := tbl.LookupCurrent(inner)
	assert.True(t, foundInner)
	_, foundOuterAtInnerScope := tbl.LookupCurrent(outer)
	assert.False(t, foundOuterAtInnerScope)

	_, found := tbl.Lookup(outer)
	assert.True(t, found, "parent-chain lookup should find outer-scope entries")

	tbl.PopScope()
	_, found = tbl.LookupCurrent(inner)
	assert.False(t, found, "popping a scope discards its entries")
}

func TestUpdateWalksParentChain(t *testing.T) {
	intern := &strintern.Table{}
	tbl := New()
	name := intern.Copy("g")
	tbl.Insert(&Entry{Name: name, Kind: KindFunction})

	tbl.PushScope()
	ok := tbl.Update(name, "new-payload")
	require.True(t, ok)

	e, _ := tbl.Lookup(name)
	assert.Equal(t, "new-payload", e.Payload)
}

func TestNamesPreservesInsertionOrder(t *testing.T) {
	intern := &strintern.Table{}
	tbl := New()
	names := []string{"c", "a", "b"}
	for _, n := range names {
		tbl.Insert(&Entry{Name: intern.Copy(n), Kind: KindVariable})
	}
	got := tbl.CurrentScope().Names()
	require.Len(t, got, 3)
	for i, n := range names {
		assert.Equal(t, n, got[i].Chars())
	}
}

func TestScopeBookkeepingFields(t *testing.T) {
	tbl := New()
	tbl.CurrentScope().ReturnType = "i32"
	tbl.CurrentScope().Breaked = true
	assert.Equal(t, "i32", tbl.CurrentScope().ReturnType)
	assert.True(t, tbl.CurrentScope().Breaked)
}
