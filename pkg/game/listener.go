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

import "github.com/George6561/KingFischer/pkg/strategy"

// EndListener is notified exactly once per game, synchronously and
// before persistence, with the statistical strategy instance for
// inspection. A panicking listener is isolated from its peers and from
// the save path.
type EndListener interface {
	OnGameEnd(stats *strategy.RandomPlayout)
}

// EndListenerFunc adapts a plain function to the EndListener interface.
type EndListenerFunc func(stats *strategy.RandomPlayout)

func (f EndListenerFunc) OnGameEnd(stats *strategy.RandomPlayout) {
	f(stats)
}
