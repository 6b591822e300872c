package lrudict_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	lrudict "github.com/justanr/lru-dict"
)

// dictMachine drives a Dict and a trivially-correct model (an ordered
// slice, oldest first) through random operation sequences and checks
// that they never disagree.
type dictMachine struct {
	dict     *lrudict.Dict[int, int]
	capacity int
	model    []lrudict.Entry[int, int]
}

func (m *dictMachine) index(key int) int {
	for i, e := range m.model {
		if e.Key == key {
			return i
		}
	}
	return -1
}

func (m *dictMachine) promote(i int, value int) {
	e := m.model[i]
	e.Value = value
	m.model = append(append(m.model[:i:i], m.model[i+1:]...), e)
}

// keyGen is deliberately narrow so sequences hit existing keys often.
var keyGen = rapid.IntRange(0, 12)

func TestDict_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := &dictMachine{
			capacity: rapid.IntRange(1, 8).Draw(rt, "capacity"),
		}
		d, err := lrudict.New[int, int](m.capacity)
		require.NoError(rt, err)
		m.dict = d

		rt.Repeat(map[string]func(*rapid.T){
			"set": func(rt *rapid.T) {
				k := keyGen.Draw(rt, "key")
				v := rapid.IntRange(0, 1000).Draw(rt, "value")

				evicted := m.dict.Set(k, v)

				if i := m.index(k); i >= 0 {
					m.promote(i, v)
					require.False(rt, evicted, "update must not evict")
					return
				}
				m.model = append(m.model, lrudict.Entry[int, int]{Key: k, Value: v})
				overflow := len(m.model) > m.capacity
				if overflow {
					m.model = m.model[1:]
				}
				require.Equal(rt, overflow, evicted)
			},
			"get": func(rt *rapid.T) {
				k := keyGen.Draw(rt, "key")
				v, err := m.dict.Get(k)

				i := m.index(k)
				if i < 0 {
					require.ErrorIs(rt, err, lrudict.ErrKeyNotFound)
					return
				}
				require.NoError(rt, err)
				require.Equal(rt, m.model[i].Value, v)
				m.promote(i, v)
			},
			"peek": func(rt *rapid.T) {
				k := keyGen.Draw(rt, "key")
				v, err := m.dict.Peek(k)

				i := m.index(k)
				if i < 0 {
					require.ErrorIs(rt, err, lrudict.ErrKeyNotFound)
					return
				}
				require.NoError(rt, err)
				require.Equal(rt, m.model[i].Value, v)
			},
			"delete": func(rt *rapid.T) {
				k := keyGen.Draw(rt, "key")
				err := m.dict.Delete(k)

				i := m.index(k)
				if i < 0 {
					require.ErrorIs(rt, err, lrudict.ErrKeyNotFound)
					return
				}
				require.NoError(rt, err)
				m.model = append(m.model[:i:i], m.model[i+1:]...)
			},
			"pop": func(rt *rapid.T) {
				k := keyGen.Draw(rt, "key")
				v, err := m.dict.Pop(k)

				i := m.index(k)
				if i < 0 {
					require.ErrorIs(rt, err, lrudict.ErrKeyNotFound)
					return
				}
				require.NoError(rt, err)
				require.Equal(rt, m.model[i].Value, v)
				m.model = append(m.model[:i:i], m.model[i+1:]...)
			},
			"resize": func(rt *rapid.T) {
				c := rapid.IntRange(1, 8).Draw(rt, "newCapacity")
				require.NoError(rt, m.dict.Resize(c))

				m.capacity = c
				if drop := len(m.model) - c; drop > 0 {
					m.model = m.model[drop:]
				}
			},
			"clear": func(rt *rapid.T) {
				m.dict.Clear()
				m.model = nil
			},
			// Invariants checked after every action.
			"": func(rt *rapid.T) {
				m.check(rt)
			},
		})
	})
}

func (m *dictMachine) check(rt *rapid.T) {
	require.Equal(rt, len(m.model), m.dict.Len())
	require.LessOrEqual(rt, m.dict.Len(), m.dict.Cap())
	require.Equal(rt, m.capacity, m.dict.Cap())

	// Traversal matches the model exactly, oldest first, and doing it
	// must not reorder anything (verified implicitly: check runs after
	// every action and would catch the drift on the next pass).
	var got []lrudict.Entry[int, int]
	for k, v := range m.dict.All() {
		got = append(got, lrudict.Entry[int, int]{Key: k, Value: v})
	}
	if len(m.model) == 0 {
		require.Empty(rt, got)
	} else {
		require.Equal(rt, m.model, got)
	}

	lru, lruErr := m.dict.LRU()
	mru, mruErr := m.dict.MRU()
	if len(m.model) == 0 {
		require.ErrorIs(rt, lruErr, lrudict.ErrEmpty)
		require.ErrorIs(rt, mruErr, lrudict.ErrEmpty)
	} else {
		require.NoError(rt, lruErr)
		require.NoError(rt, mruErr)
		require.Equal(rt, m.model[0].Key, lru)
		require.Equal(rt, m.model[len(m.model)-1].Key, mru)
	}

	for _, e := range m.model {
		require.True(rt, m.dict.Contains(e.Key))
		v, err := m.dict.Peek(e.Key)
		require.NoError(rt, err)
		require.Equal(rt, e.Value, v)
	}
}

func TestDict_PeekNeverPromotes(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(rt, "entries")
		d, err := lrudict.New(10, pairs(n)...)
		require.NoError(rt, err)

		lruBefore, err := d.LRU()
		require.NoError(rt, err)
		mruBefore, err := d.MRU()
		require.NoError(rt, err)

		k := rapid.IntRange(0, n-1).Draw(rt, "key")
		_, err = d.Peek(k)
		require.NoError(rt, err)

		lruAfter, err := d.LRU()
		require.NoError(rt, err)
		mruAfter, err := d.MRU()
		require.NoError(rt, err)

		require.Equal(rt, lruBefore, lruAfter)
		require.Equal(rt, mruBefore, mruAfter)
	})
}

func TestDict_EvictionVictimIsAlwaysLRU(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(1, 6).Draw(rt, "capacity")
		d, err := lrudict.New(capacity, pairs(capacity)...)
		require.NoError(rt, err)

		victim, err := d.LRU()
		require.NoError(rt, err)

		// A fresh key forces exactly one eviction.
		require.True(rt, d.Set(1000, 0))
		require.False(rt, d.Contains(victim))
		require.Equal(rt, capacity, d.Len())
	})
}

func TestDict_FailedLookupsLeaveNoTrace(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d, err := lrudict.New(5, pairs(5)...)
		require.NoError(rt, err)

		missing := rapid.IntRange(100, 200).Draw(rt, "missing")

		_, getErr := d.Get(missing)
		_, peekErr := d.Peek(missing)
		delErr := d.Delete(missing)
		for _, err := range []error{getErr, peekErr, delErr} {
			require.True(rt, errors.Is(err, lrudict.ErrKeyNotFound))
		}

		require.Equal(rt, []int{0, 1, 2, 3, 4}, collectKeys(d))
	})
}
