package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuhsinc/pocket-ledger/internal/model"
)

func tpl(id, note string, amount int64, cat model.CategoryID) model.QuickTemplate {
	return model.QuickTemplate{ID: id, Note: note, Amount: amount, CategoryID: cat}
}

func TestStoreCRUD(t *testing.T) {
	s := NewStore(nil)

	s.Add(tpl("t1", "固定通勤", 30, model.CategoryCommute))
	s.Add(tpl("t2", "健身房", 50, model.CategoryFitness))
	require.Equal(t, 2, s.Len())

	t.Run("update replaces matching entry", func(t *testing.T) {
		s.Update(tpl("t2", "健身房月費", 1200, model.CategoryFitness))
		got, ok := s.Get("t2")
		require.True(t, ok)
		assert.Equal(t, "健身房月費", got.Note)
		assert.Equal(t, int64(1200), got.Amount)
	})

	t.Run("update with unknown id is a no-op", func(t *testing.T) {
		s.Update(tpl("missing", "x", 1, model.CategoryOther))
		assert.Equal(t, 2, s.Len())
		_, ok := s.Get("missing")
		assert.False(t, ok)
	})

	t.Run("remove deletes matching entry", func(t *testing.T) {
		s.Remove("t1")
		assert.Equal(t, 1, s.Len())
		_, ok := s.Get("t1")
		assert.False(t, ok)
	})

	t.Run("remove with unknown id is a no-op", func(t *testing.T) {
		s.Remove("missing")
		assert.Equal(t, 1, s.Len())
	})
}

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore(nil)
	s.Add(tpl("a", "一", 1, model.CategoryOther))
	s.Add(tpl("b", "二", 2, model.CategoryOther))
	s.Add(tpl("c", "三", 3, model.CategoryOther))

	var ids []string
	for _, item := range s.Templates() {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestReplaceAll(t *testing.T) {
	s := NewStore([]model.QuickTemplate{tpl("old", "舊", 1, model.CategoryOther)})

	replacement := []model.QuickTemplate{
		tpl("n1", "新一", 10, model.CategoryFood),
		tpl("n2", "新二", 20, model.CategoryCoffee),
	}
	s.ReplaceAll(replacement)

	require.Equal(t, 2, s.Len())
	_, ok := s.Get("old")
	assert.False(t, ok)

	// The store holds its own copy
	replacement[0].Note = "mutated"
	got, ok := s.Get("n1")
	require.True(t, ok)
	assert.Equal(t, "新一", got.Note)
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		parts := strings.SplitN(id, "_", 2)
		require.Len(t, parts, 2)
		assert.Len(t, parts[1], 6)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
