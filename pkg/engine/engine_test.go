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

package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/George6561/KingFischer/pkg/board"
)

// fakeEngine writes a shell script that speaks just enough UCI for the
// wrapper and returns a started Engine talking to it.
func fakeEngine(t *testing.T, bestmove string) *Engine {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake engine script requires a POSIX shell")
	}

	script := `while read cmd; do
	case "$cmd" in
	uci) echo uciok ;;
	isready) echo readyok ;;
	go*) echo "bestmove ` + bestmove + `" ;;
	quit) exit 0 ;;
	esac
done
`

	path := filepath.Join(t.TempDir(), "engine.sh")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	eng, err := Start(Config{Name: "fake", Cmd: "sh", Arg: path, MoveTime: 10})
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Kill() })

	return eng
}

func TestHandshakeAndBestMove(t *testing.T) {
	eng := fakeEngine(t, "e2e4")

	require.NoError(t, eng.Initialize())
	require.NoError(t, eng.NewGame())
	require.NoError(t, eng.Position(nil))

	move, ok, err := eng.BestMove()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "e2e4", move.String())
}

func TestBestMoveNone(t *testing.T) {
	eng := fakeEngine(t, "(none)")

	require.NoError(t, eng.Initialize())

	_, ok, err := eng.BestMove()
	require.NoError(t, err, "a moveless engine is a terminal signal, not a failure")
	require.False(t, ok)
}

func TestPositionCarriesHistory(t *testing.T) {
	eng := fakeEngine(t, "e7e5")

	require.NoError(t, eng.Initialize())

	e2e4, _ := board.ParseMove("e2e4")
	require.NoError(t, eng.Position([]board.Move{e2e4}))

	move, ok, err := eng.BestMove()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "e7e5", move.String())
}
