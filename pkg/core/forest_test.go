package core_test

import (
	"errors"
	"testing"

	"github.com/aretw0/basketweave/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTag(t *testing.T, name string, ids ...string) *core.Tag {
	t.Helper()
	states := make([]*core.State, 0, len(ids))
	for _, id := range ids {
		s, err := core.NewState(id, id)
		require.NoError(t, err)
		states = append(states, s)
	}
	tag, err := core.NewTag(name, states)
	require.NoError(t, err)
	return tag
}

func TestForestWalk(t *testing.T) {
	a := newBasket(t, "A")
	a1 := newBasket(t, "A1")
	a2 := newBasket(t, "A2")
	b := newBasket(t, "B")
	require.NoError(t, a.AddChild(a1))
	require.NoError(t, a.AddChild(a2))

	f, err := core.NewForest([]*core.Basket{a, b}, nil)
	require.NoError(t, err)

	var names []string
	var depths []int
	require.NoError(t, f.Walk(func(b *core.Basket, depth int) error {
		names = append(names, b.Name())
		depths = append(depths, depth)
		return nil
	}))
	assert.Equal(t, []string{"A", "A1", "A2", "B"}, names)
	assert.Equal(t, []int{0, 1, 1, 0}, depths)
	assert.Equal(t, []*core.Basket{a, a1, a2, b}, f.Flatten())

	stop := errors.New("stop")
	visited := 0
	err = f.Walk(func(*core.Basket, int) error {
		visited++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, visited)
}

func TestForestValidate(t *testing.T) {
	t.Run("Registered States", func(t *testing.T) {
		todo := newTag(t, "To Do", "todo_unchecked", "todo_done")
		unchecked, _ := todo.State("todo_unchecked")

		b := newBasket(t, "Tasks")
		group := newGroup(t)
		require.NoError(t, group.AddNote(newText(t, "task", core.NoteStates(unchecked))))
		require.NoError(t, b.AddNote(group))

		f, err := core.NewForest([]*core.Basket{b}, []*core.Tag{todo})
		require.NoError(t, err)
		assert.Len(t, f.States(), 2)

		_, err = core.NewForest([]*core.Basket{b}, nil)
		assert.ErrorIs(t, err, core.ErrUnregisteredState, "nested notes are checked too")
	})

	t.Run("Duplicate State IDs", func(t *testing.T) {
		_, err := core.NewForest(nil, []*core.Tag{newTag(t, "One", "same"), newTag(t, "Two", "same")})
		assert.ErrorIs(t, err, core.ErrDuplicateStateID)
	})

	t.Run("Duplicate Baskets", func(t *testing.T) {
		b := newBasket(t, "Twice")
		_, err := core.NewForest([]*core.Basket{b, b}, nil)
		assert.ErrorIs(t, err, core.ErrDuplicateBasket)

		parent, child := newBasket(t, "Parent"), newBasket(t, "Child")
		require.NoError(t, parent.AddChild(child))
		_, err = core.NewForest([]*core.Basket{parent, child}, nil)
		assert.ErrorIs(t, err, core.ErrDuplicateBasket, "a child cannot also be a root")
	})

	t.Run("Nil Items", func(t *testing.T) {
		_, err := core.NewForest([]*core.Basket{nil}, nil)
		assert.ErrorIs(t, err, core.ErrNilItem)
		_, err = core.NewForest(nil, []*core.Tag{nil})
		assert.ErrorIs(t, err, core.ErrNilItem)
	})
}
