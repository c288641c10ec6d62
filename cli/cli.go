// Package cli implements the interactive text interface: a read-eval-print
// loop where a human enters UCI moves and asks the engine to reply.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gambit/game"
	"gambit/searcher"

	"github.com/rs/zerolog/log"
)

type CLI struct {
	in     io.Reader
	out    io.Writer
	engine *searcher.MCTS
	state  game.ChessState
	pretty bool
}

func New(in io.Reader, out io.Writer, engine *searcher.MCTS, state game.ChessState, pretty bool) *CLI {
	return &CLI{
		in:     in,
		out:    out,
		engine: engine,
		state:  state,
		pretty: pretty,
	}
}

// Run reads commands until quit/exit or EOF.
func (c *CLI) Run() error {
	fmt.Fprintln(c.out, "gambit - MCTS chess engine. Type 'help' for commands.")

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}

		cmd := strings.TrimSpace(scanner.Text())
		switch {
		case cmd == "":
		case cmd == "quit" || cmd == "exit":
			fmt.Fprintln(c.out, "Bye!")
			return nil
		case cmd == "help":
			c.printHelp()
		case cmd == "board":
			fmt.Fprint(c.out, c.state.Board(c.pretty))
		case cmd == "fen":
			fmt.Fprintln(c.out, c.state.FEN())
		case cmd == "new":
			c.state = game.NewGame()
			fmt.Fprint(c.out, c.state.Board(c.pretty))
		case cmd == "moves":
			c.printMoves()
		case cmd == "ai":
			c.playEngineMove()
		case cmd == "move" || strings.HasPrefix(cmd, "move "):
			c.playHumanMove(strings.TrimSpace(strings.TrimPrefix(cmd, "move")))
		default:
			fmt.Fprintf(c.out, "Unknown command: %s\n", cmd)
		}
	}
	return scanner.Err()
}

func (c *CLI) printHelp() {
	fmt.Fprintln(c.out, "Commands:")
	fmt.Fprintln(c.out, "  help        show this help")
	fmt.Fprintln(c.out, "  board       print the current position")
	fmt.Fprintln(c.out, "  fen         print the current position as FEN")
	fmt.Fprintln(c.out, "  moves       list legal moves")
	fmt.Fprintln(c.out, "  move <uci>  play a move, e.g. move e2e4 (e7e8q to promote)")
	fmt.Fprintln(c.out, "  ai          let the engine choose and play a move")
	fmt.Fprintln(c.out, "  new         start a new game")
	fmt.Fprintln(c.out, "  quit, exit  leave")
}

func (c *CLI) printMoves() {
	moves := c.state.LegalMoves()
	if len(moves) == 0 {
		fmt.Fprintln(c.out, "No legal moves")
		return
	}
	text := make([]string, len(moves))
	for i, m := range moves {
		text[i] = m.String()
	}
	fmt.Fprintln(c.out, strings.Join(text, " "))
}

func (c *CLI) playEngineMove() {
	move, ok := c.engine.FindMove(c.state)
	if !ok {
		fmt.Fprintln(c.out, "No move available")
		return
	}

	stats := c.engine.Stats()
	log.Debug().
		Int("simulations", stats.Simulations).
		Int("full_playouts", stats.FullPlayouts).
		Dur("elapsed", stats.Elapsed).
		Str("move", move.String()).
		Msg("search complete")

	fmt.Fprintf(c.out, "AI plays: %s\n", move)
	c.apply(move)
}

func (c *CLI) playHumanMove(text string) {
	if text == "" {
		fmt.Fprintln(c.out, "Specify a UCI move, e.g: move e2e4")
		return
	}
	move, err := c.state.ParseMove(text)
	if err != nil {
		fmt.Fprintf(c.out, "%v\n", err)
		return
	}
	c.apply(move)
}

func (c *CLI) apply(move game.Move) {
	c.state = c.state.Play(move).(game.ChessState)
	fmt.Fprint(c.out, c.state.Board(c.pretty))

	switch c.state.Status() {
	case game.Checkmate:
		fmt.Fprintf(c.out, "Checkmate! %s wins.\n", c.state.Turn().Other())
	case game.Stalemate:
		fmt.Fprintln(c.out, "Stalemate.")
	}
}
