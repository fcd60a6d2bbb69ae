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

package game

import "github.com/George6561/KingFischer/pkg/board"

// Result represents the result of a finished game from White's
// perspective.
type Result int

const (
	Win  Result = +1
	Draw Result = 0
	Loss Result = -1
)

// GameLostBy maps the losing side to the game's Result.
var GameLostBy = [2]Result{
	board.White: Loss,
	board.Black: Win,
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}

// For classifies the result from the given side's point of view, in the
// form the playout strategy's outcome recorder accepts.
func (result Result) For(side board.Side) string {
	if result == Draw {
		return "draw"
	}

	won := (result == Win) == (side == board.White)
	if won {
		return "win"
	}
	return "loss"
}
