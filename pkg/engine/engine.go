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

// Package engine talks to an external UCI engine process over its
// standard input and output.
package engine

import (
	"bufio"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/George6561/KingFischer/pkg/board"
)

// Config describes how to start and drive an engine process.
type Config struct {
	Name string `yaml:"name"`
	Cmd  string `yaml:"cmd"`
	Dir  string `yaml:"dir"`
	Arg  string `yaml:"arg"`

	// Fixed per-move thinking budget in milliseconds.
	MoveTime int `yaml:"movetime"`
}

// Start launches the engine process and wires up its line streams. The
// returned Engine has not completed the uci handshake yet; call
// Initialize before asking it for moves.
func Start(config Config) (*Engine, error) {
	var engine Engine
	engine.config = config

	process := exec.Command(config.Cmd, strings.Fields(config.Arg)...)
	process.Dir = config.Dir

	stdin, err := process.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	stdout, err := process.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	engine.writer = bufio.NewWriter(stdin)
	engine.reader = bufio.NewReader(stdout)
	engine.lines = make(chan string)

	engine.Cmd = process

	if err := engine.Cmd.Start(); err != nil {
		return nil, fmt.Errorf("engine: starting %s: %w", config.Cmd, err)
	}

	go func() {
		for {
			line, err := engine.reader.ReadString('\n')
			if err != nil {
				engine.err = err
				close(engine.lines)
				return
			}

			line = strings.Trim(line, " \n\t\r")

			logrus.Debugf("info: ("+engine.config.Name+")> %s\n", line)
			engine.lines <- line
		}
	}()

	return &engine, nil
}

type Engine struct {
	config Config

	*exec.Cmd

	writer *bufio.Writer
	reader *bufio.Reader

	lines chan string

	err error
}

// Name returns the configured display name of the engine.
func (engine *Engine) Name() string {
	return engine.config.Name
}

// Initialize performs the uci handshake on startup.
func (engine *Engine) Initialize() error {
	if err := engine.Write("uci"); err != nil {
		return err
	}

	_, err := engine.Await("uciok", 5*time.Second)
	return err
}

// NewGame prepares the engine for a new game of chess.
func (engine *Engine) NewGame() error {
	if err := engine.Write("ucinewgame"); err != nil {
		return err
	}

	return engine.Synchronize()
}

// Synchronize waits for the engine to complete some time consuming task
// and synchronizes the interface with it.
func (engine *Engine) Synchronize() error {
	if err := engine.Write("isready"); err != nil {
		return err
	}

	_, err := engine.Await("readyok", 5*time.Second)
	return err
}

// Position sends the accumulated move history as a position update.
func (engine *Engine) Position(history []board.Move) error {
	if len(history) == 0 {
		return engine.Write("position startpos")
	}

	moves := make([]string, 0, len(history))
	for _, move := range history {
		moves = append(moves, move.String())
	}

	return engine.Write("position startpos moves %s", strings.Join(moves, " "))
}

// BestMove asks the engine for a move under the configured thinking
// budget. The second return is false when the engine reports having no
// move, which is a terminal game signal rather than an error.
func (engine *Engine) BestMove() (board.Move, bool, error) {
	if err := engine.Write("go movetime %d", engine.config.MoveTime); err != nil {
		return board.Move{}, false, err
	}

	budget := time.Duration(engine.config.MoveTime)*time.Millisecond + 5*time.Second
	line, err := engine.Await("bestmove .*", budget)
	if err != nil {
		return board.Move{}, false, err
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return board.Move{}, false, nil
	}

	answer := fields[1]
	if answer == "(none)" || answer == "0000" {
		return board.Move{}, false, nil
	}

	move, err := board.ParseMove(answer)
	if err != nil {
		return board.Move{}, false, fmt.Errorf("engine: bad bestmove %q: %w", answer, err)
	}

	return move, true, nil
}

// Kill tells the engine to quit and reaps the process.
func (engine *Engine) Kill() error {
	if err := engine.Write("quit"); err != nil {
		return err
	}

	return engine.Process.Kill()
}

var ErrReadTimeout = errors.New("engine: read i/o timeout")

// Await is a utility function which waits for a particular string from
// the engine with a fixed timeout.
func (engine *Engine) Await(pattern string, timeout time.Duration) (string, error) {
	regex := regexp.MustCompile(pattern)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			// timer ran out: wait timeout

			if engine.err != nil {
				return "", engine.err
			}

			return "", ErrReadTimeout

		case line, ok := <-engine.lines:
			if !ok {
				if engine.err != nil {
					return "", engine.err
				}
				return "", ErrReadTimeout
			}

			if regex.MatchString(line) {
				// line is the expected line
				return line, nil
			}
		}
	}
}

func (engine *Engine) Write(format string, a ...any) error {
	logrus.Debugf("info: ("+engine.config.Name+")< "+format+"\n", a...)

	if _, err := fmt.Fprintf(engine.writer, format+"\n", a...); err != nil {
		return err
	}

	return engine.writer.Flush()
}
