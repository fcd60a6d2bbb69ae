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

import "math"

// DefaultExploration is the standard UCT exploration constant.
const DefaultExploration = math.Sqrt2

// SelectChild picks a child of parent using the UCT policy with
// exploration constant c. An unvisited child is treated as having
// unbounded priority, so every child is explored once before
// exploitation begins; among several unvisited children the first in
// iteration order wins, and ties on score also go to the first maximum.
// A childless parent yields nil.
func SelectChild(parent *Node, c float64) *Node {
	if len(parent.children) == 0 {
		return nil
	}

	// A zero-visit parent contributes no exploration bonus; taking its
	// logarithm would poison every child score with NaN.
	lnParent := 0.0
	if parent.visitCount > 0 {
		lnParent = math.Log(float64(parent.visitCount))
	}

	var best *Node
	bestScore := math.Inf(-1)
	for _, child := range parent.children {
		if child.visitCount == 0 {
			return child
		}

		score := uct(child.winScore, child.visitCount, lnParent, c)
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

func uct(winScore float64, visits int, lnParent, c float64) float64 {
	mean := winScore / float64(visits)
	return mean + c*math.Sqrt(lnParent/float64(visits))
}
