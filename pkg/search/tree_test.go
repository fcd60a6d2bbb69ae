// Copyright © 2024 George Miller
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/George6561/KingFischer/pkg/board"
)

func mv(str string) board.Move {
	move, err := board.ParseMove(str)
	if err != nil {
		panic(err)
	}
	return move
}

func TestAddChild(t *testing.T) {
	tree := NewTree("start")

	child := tree.AddChild(tree.Root(), "after e4", mv("e2e4"))

	require.Equal(t, tree.Root(), child.Parent())
	require.Equal(t, []*Node{child}, tree.Root().Children())
	require.Equal(t, "after e4", child.Snapshot())

	move, ok := child.Move()
	require.True(t, ok)
	require.Equal(t, mv("e2e4"), move)

	_, ok = tree.Root().Move()
	require.False(t, ok, "the root carries no move")
	require.Nil(t, tree.Root().Parent())
}

func TestMoveToChild(t *testing.T) {
	t.Run("replay follows direct traversal", func(t *testing.T) {
		tree := NewTree("start")
		a := tree.AddChild(tree.Root(), "a", mv("e2e4"))
		tree.AddChild(tree.Root(), "b", mv("d2d4"))
		aa := tree.AddChild(a, "aa", mv("e7e5"))
		ab := tree.AddChild(a, "ab", mv("c7c5"))

		require.NoError(t, tree.MoveToChild(mv("e2e4")))
		require.Equal(t, a, tree.Current())
		require.NoError(t, tree.MoveToChild(mv("c7c5")))
		require.Equal(t, ab, tree.Current())

		tree.ResetToRoot()
		require.NoError(t, tree.MoveToChild(mv("e2e4")))
		require.NoError(t, tree.MoveToChild(mv("e7e5")))
		require.Equal(t, aa, tree.Current())
	})

	t.Run("unregistered move fails loudly", func(t *testing.T) {
		tree := NewTree("start")
		tree.AddChild(tree.Root(), "a", mv("e2e4"))

		err := tree.MoveToChild(mv("g1f3"))
		require.ErrorIs(t, err, ErrUnreachableMove)
		require.Equal(t, tree.Root(), tree.Current(), "a failed navigation must not move the pointer")
	})
}

func TestResetToRoot(t *testing.T) {
	tree := NewTree("start")
	a := tree.AddChild(tree.Root(), "a", mv("e2e4"))
	tree.AddChild(a, "aa", mv("e7e5"))

	require.NoError(t, tree.MoveToChild(mv("e2e4")))
	require.NoError(t, tree.MoveToChild(mv("e7e5")))

	tree.ResetToRoot()
	require.Equal(t, tree.Root(), tree.Current())

	// Navigation after a reset matches a freshly built tree.
	require.NoError(t, tree.MoveToChild(mv("e2e4")))
	require.Equal(t, a, tree.Current())
}

func TestNodeAccumulators(t *testing.T) {
	tree := NewTree("start")
	node := tree.AddChild(tree.Root(), "a", mv("e2e4"))

	require.Zero(t, node.VisitCount())
	require.Zero(t, node.WinScore())

	node.IncrementVisitCount()
	node.IncrementVisitCount()
	node.AddWinScore(1)
	node.AddWinScore(0.5)

	require.Equal(t, 2, node.VisitCount())
	require.Equal(t, 1.5, node.WinScore())
}
