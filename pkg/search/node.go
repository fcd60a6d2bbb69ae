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

// Package search holds the game tree bookkeeping used for lookahead
// and simulation statistics, plus the UCT child-selection policy.
package search

import "github.com/George6561/KingFischer/pkg/board"

// Node records one board position reached during tree exploration,
// together with its accumulated simulation statistics. Nodes are
// created through Tree.AddChild and never removed individually.
type Node struct {
	snapshot string

	// The move that produced this position. The root has none.
	move    board.Move
	hasMove bool

	parent   *Node
	children []*Node

	visitCount int
	winScore   float64
}

// Snapshot returns the board snapshot this node was created with.
func (n *Node) Snapshot() string {
	return n.snapshot
}

// Move returns the move that led to this node, and whether there is
// one. Only the root reports false.
func (n *Node) Move() (board.Move, bool) {
	return n.move, n.hasMove
}

// Parent returns the node's parent, nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in insertion order. The slice is
// shared: callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// VisitCount returns how often the node has been visited.
func (n *Node) VisitCount() int {
	return n.visitCount
}

// WinScore returns the node's accumulated win score.
func (n *Node) WinScore() float64 {
	return n.winScore
}

// IncrementVisitCount bumps the visit counter by one. The counter only
// ever grows.
func (n *Node) IncrementVisitCount() {
	n.visitCount++
}

// AddWinScore accumulates score onto the node's win score.
func (n *Node) AddWinScore(score float64) {
	n.winScore += score
}

// childFor returns the child carrying the given move, if any.
func (n *Node) childFor(move board.Move) *Node {
	for _, child := range n.children {
		if child.hasMove && child.move == move {
			return child
		}
	}
	return nil
}
