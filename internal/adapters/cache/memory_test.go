package cache_test

import (
	"strconv"
	"testing"

	"github.com/lineagetools/taxlin/internal/adapters/cache"
	"github.com/lineagetools/taxlin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_PutAndGet(t *testing.T) {
	m := cache.NewMemory(4)

	m.Put("a", domain.LineageOK("d__Bacteria"))

	res, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "d__Bacteria", res.Lineage)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMemory_CachesFailures(t *testing.T) {
	m := cache.NewMemory(4)

	m.Put("bad", domain.LineageFailure(domain.ErrUnknownTaxon))

	res, ok := m.Get("bad")
	require.True(t, ok)
	require.False(t, res.OK())
	assert.ErrorIs(t, res.Err, domain.ErrUnknownTaxon)
}

func TestMemory_EvictsOldestAtCapacity(t *testing.T) {
	m := cache.NewMemory(3)

	for i := 0; i < 4; i++ {
		m.Put(strconv.Itoa(i), domain.LineageOK(""))
	}

	assert.Equal(t, 3, m.Len())
	_, ok := m.Get("0")
	assert.False(t, ok, "oldest entry should have been evicted")
	_, ok = m.Get("3")
	assert.True(t, ok)
}

func TestMemory_OverwriteDoesNotGrow(t *testing.T) {
	m := cache.NewMemory(2)

	m.Put("a", domain.LineageOK("one"))
	m.Put("a", domain.LineageOK("two"))

	assert.Equal(t, 1, m.Len())
	res, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "two", res.Lineage)
}

func TestMemory_Clear(t *testing.T) {
	m := cache.NewMemory(4)
	m.Put("a", domain.LineageOK("x"))
	m.Put("b", domain.LineageOK("y"))

	m.Clear()

	assert.Equal(t, 0, m.Len())
	_, ok := m.Get("a")
	assert.False(t, ok)
}
