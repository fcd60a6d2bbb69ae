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
	"errors"
	"fmt"

	"github.com/George6561/KingFischer/pkg/board"
)

// ErrUnreachableMove is returned by MoveToChild when none of the
// current node's children carry the requested move. This is a caller
// contract violation, not an expected runtime condition.
var ErrUnreachableMove = errors.New("search: move not found among current node's children")

// Tree owns a rooted game tree and a current pointer used for stepwise
// navigation. The current node is always reachable from the root.
type Tree struct {
	root    *Node
	current *Node
}

// NewTree creates a tree whose root records the given board snapshot.
// The root has no move and no parent.
func NewTree(snapshot string) *Tree {
	root := &Node{snapshot: snapshot}
	return &Tree{root: root, current: root}
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Current returns the node the tree is positioned on.
func (t *Tree) Current() *Node {
	return t.current
}

// AddChild creates a node for the position reached by playing move from
// parent, links it, and returns it. Legality of the move is the board
// capability's concern; the tree trusts its caller.
func (t *Tree) AddChild(parent *Node, snapshot string, move board.Move) *Node {
	child := &Node{
		snapshot: snapshot,
		move:     move,
		hasMove:  true,
		parent:   parent,
	}
	parent.children = append(parent.children, child)
	return child
}

// MoveToChild advances the current pointer to the child carrying the
// given move. A move no child carries fails loudly.
func (t *Tree) MoveToChild(move board.Move) error {
	child := t.current.childFor(move)
	if child == nil {
		return fmt.Errorf("%w: %s", ErrUnreachableMove, move)
	}

	t.current = child
	return nil
}

// ResetToRoot restores the current pointer to the root without touching
// tree contents. It always succeeds.
func (t *Tree) ResetToRoot() {
	t.current = t.root
}
