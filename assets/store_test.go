package assets_test

import (
	"testing"

	"github.com/plus3/shapeshow/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type params struct {
	Time float32
}

func TestZeroStoreIsUsable(t *testing.T) {
	var store assets.Store[params]

	assert.Equal(t, 0, store.Len())
	assert.Nil(t, store.Get(assets.Handle[params]{}))
	assert.False(t, store.Release(assets.Handle[params]{}))
	for range store.IterMut() {
		t.Fatal("empty store yielded a value")
	}
}

func TestAddGetRemove(t *testing.T) {
	var store assets.Store[params]

	a := store.Add(params{Time: 1})
	b := store.Add(params{Time: 2})
	assert.NotEqual(t, a, b)
	assert.False(t, a.IsZero())

	require.NotNil(t, store.Get(a))
	assert.Equal(t, float32(1), store.Get(a).Time)

	store.Get(b).Time = 5
	assert.Equal(t, float32(5), store.Get(b).Time)

	assert.True(t, store.Remove(a))
	assert.False(t, store.Remove(a))
	assert.Nil(t, store.Get(a))
	assert.Equal(t, 1, store.Len())
}

func TestHandlesAreNotReused(t *testing.T) {
	var store assets.Store[params]

	a := store.Add(params{})
	store.Remove(a)
	b := store.Add(params{})

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Nil(t, store.Get(a))
}

func TestReferenceCounting(t *testing.T) {
	var store assets.Store[params]

	h := store.Add(params{})
	assert.Equal(t, 1, store.RefCount(h))

	clone := store.Clone(h)
	assert.Equal(t, h, clone)
	assert.Equal(t, 2, store.RefCount(h))

	assert.False(t, store.Release(h))
	assert.True(t, store.Contains(h))

	assert.True(t, store.Release(clone))
	assert.False(t, store.Contains(h))
	assert.Equal(t, 0, store.RefCount(h))
	assert.True(t, store.Clone(h).IsZero())
}

func TestIterMutVisitsLiveAssetsInOrder(t *testing.T) {
	var store assets.Store[params]

	var handles []assets.Handle[params]
	for i := range 10 {
		handles = append(handles, store.Add(params{Time: float32(i)}))
	}
	for _, h := range handles[:6] {
		store.Remove(h)
	}

	var seen []float32
	for _, p := range store.IterMut() {
		seen = append(seen, p.Time)
		p.Time += 100
	}
	assert.Equal(t, []float32{6, 7, 8, 9}, seen)

	for h, p := range store.IterMut() {
		assert.Equal(t, store.Get(h), p)
		assert.GreaterOrEqual(t, p.Time, float32(106))
	}
}
