// Package controller handles text commands to play moves on a board.
package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jacobpatterson1549/selene-scrabble/game/board"
	"github.com/jacobpatterson1549/selene-scrabble/game/tile"
	"github.com/jacobpatterson1549/selene-scrabble/game/word"
	"github.com/jacobpatterson1549/selene-scrabble/log"
)

type (
	// Game reads commands to stage and commit letters on a board, keeping the total score.
	Game struct {
		debug    bool
		verify   bool
		log      log.Logger
		board    Board
		player   player
		handlers map[string]commandHandler
	}

	// Config contains the properties to create games.
	Config struct {
		// Debug is a flag that causes the game to log the commands that are read.
		Debug bool
		// Log is used to log errors and other information.
		Log log.Logger
		// VerifyWords causes every commit to check the new words in the dictionary.
		VerifyWords bool
	}

	// Board is the grid the game stages and commits letters on.
	Board interface {
		AddLetter(row, col int, l tile.Letter) error
		Letter(row, col int) (tile.Letter, bool, error)
		DeleteLetter(row, col int) error
		WordMultiplier(row, col int) (int, error)
		LetterMultiplier(row, col int) (int, error)
		MoveAllowed() bool
		NewWords() []word.Word
		CommitMove(verify bool) (int, error)
		Pending() []board.Placement
		ClearPending()
		String() string
	}

	// commandHandler runs a command with the arguments after its name, returning the response.
	commandHandler func(args []string) (string, error)
)

// errQuit stops the game.
var errQuit = errors.New("quit")

// NewGame creates a game on the board.
func (cfg Config) NewGame(b Board) (*Game, error) {
	if err := cfg.validate(b); err != nil {
		return nil, fmt.Errorf("creating game: validation: %w", err)
	}
	g := Game{
		debug:  cfg.Debug,
		verify: cfg.VerifyWords,
		log:    cfg.Log,
		board:  b,
	}
	g.handlers = map[string]commandHandler{
		"add":     g.handleAdd,
		"del":     g.handleDelete,
		"get":     g.handleGet,
		"square":  g.handleSquare,
		"pending": g.handlePending,
		"check":   g.handleCheck,
		"words":   g.handleWords,
		"commit":  g.handleCommit,
		"clear":   g.handleClear,
		"show":    g.handleShow,
		"score":   g.handleScore,
		"help":    g.handleHelp,
		"quit":    g.handleQuit,
	}
	return &g, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate(b Board) error {
	switch {
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	case b == nil:
		return fmt.Errorf("board required")
	}
	return nil
}

// Run reads commands, one per line, and writes the responses until the input ends, the quit command is read, or the context is done.
func (g *Game) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := make(chan string)
	errC := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go scanLines(r, lines, errC, done)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select { // BLOCKS
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-errC
			}
			err := g.handleCommand(line, w)
			switch {
			case errors.Is(err, errQuit):
				return nil
			case err != nil:
				return err
			}
		}
	}
}

// scanLines sends each line of the reader until the reader ends or done is closed.
// The lines channel is closed after the read error, if any, is sent.
func scanLines(r io.Reader, lines chan<- string, errC chan<- error, done <-chan struct{}) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-done:
			errC <- nil
			return
		}
	}
	var err error
	if err2 := scanner.Err(); err2 != nil {
		err = fmt.Errorf("reading commands: %w", err2)
	}
	errC <- err
}

// handleCommand runs the command on the line and writes the response or warning.
// Only errors that are not warnings are returned.
func (g *Game) handleCommand(line string, w io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	if g.debug {
		g.log.Printf("game reading command %q", line)
	}
	var response string
	var err error
	ch, ok := g.handlers[name]
	if !ok {
		err = gameWarning(fmt.Sprintf("unknown command %q, try help", name))
	} else {
		response, err = ch(args)
	}
	if err != nil && !errors.Is(err, errQuit) {
		var gw gameWarning
		if !errors.As(err, &gw) {
			return err
		}
		response = "warning: " + gw.Error()
		err = nil
	}
	if _, err2 := io.WriteString(w, response+"\n"); err2 != nil {
		return fmt.Errorf("writing response: %w", err2)
	}
	return err
}

// position parses the row and column arguments.
func position(args []string) (row, col int, err error) {
	if len(args) < 2 {
		return 0, 0, gameWarning("row and column required")
	}
	row, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, gameWarning(fmt.Sprintf("invalid row %q", args[0]))
	}
	col, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, gameWarning(fmt.Sprintf("invalid column %q", args[1]))
	}
	return row, col, nil
}

// checkArgCount returns a warning if the number of arguments is not expected.
func checkArgCount(args []string, want int, usage string) error {
	if len(args) != want {
		return gameWarning("usage: " + usage)
	}
	return nil
}

// handleAdd stages a letter: add ROW COL LETTER.
func (g *Game) handleAdd(args []string) (string, error) {
	if err := checkArgCount(args, 3, "add ROW COL LETTER"); err != nil {
		return "", err
	}
	row, col, err := position(args)
	if err != nil {
		return "", err
	}
	l, err := tile.ParseLetter(args[2])
	if err != nil {
		return "", warn(err)
	}
	if err := g.board.AddLetter(row, col, l); err != nil {
		return "", warn(err)
	}
	return fmt.Sprintf("added %v at %v, %v", l, row, col), nil
}

// handleDelete removes a staged letter: del ROW COL.
func (g *Game) handleDelete(args []string) (string, error) {
	if err := checkArgCount(args, 2, "del ROW COL"); err != nil {
		return "", err
	}
	row, col, err := position(args)
	if err != nil {
		return "", err
	}
	if err := g.board.DeleteLetter(row, col); err != nil {
		return "", warn(err)
	}
	return fmt.Sprintf("deleted %v, %v", row, col), nil
}

// handleGet shows the letter at a position: get ROW COL.
func (g *Game) handleGet(args []string) (string, error) {
	if err := checkArgCount(args, 2, "get ROW COL"); err != nil {
		return "", err
	}
	row, col, err := position(args)
	if err != nil {
		return "", err
	}
	l, ok, err := g.board.Letter(row, col)
	switch {
	case err != nil:
		return "", warn(err)
	case !ok:
		return fmt.Sprintf("%v, %v: empty", row, col), nil
	}
	return fmt.Sprintf("%v, %v: %v", row, col, l), nil
}

// handleSquare shows the multipliers at a position: square ROW COL.
func (g *Game) handleSquare(args []string) (string, error) {
	if err := checkArgCount(args, 2, "square ROW COL"); err != nil {
		return "", err
	}
	row, col, err := position(args)
	if err != nil {
		return "", err
	}
	wm, err := g.board.WordMultiplier(row, col)
	if err != nil {
		return "", warn(err)
	}
	lm, err := g.board.LetterMultiplier(row, col)
	if err != nil {
		return "", warn(err)
	}
	return fmt.Sprintf("%v, %v: word x%v, letter x%v", row, col, wm, lm), nil
}

// handlePending lists the staged letters.
func (g *Game) handlePending(args []string) (string, error) {
	placements := g.board.Pending()
	if len(placements) == 0 {
		return "no staged letters", nil
	}
	lines := make([]string, len(placements))
	for i, p := range placements {
		lines[i] = fmt.Sprintf("%v at %v, %v", p.Letter, p.Row, p.Col)
	}
	return strings.Join(lines, "\n"), nil
}

// handleCheck reports whether the staged letters can be committed.
func (g *Game) handleCheck(args []string) (string, error) {
	if !g.board.MoveAllowed() {
		return "move not allowed", nil
	}
	return "move allowed", nil
}

// handleWords lists the words the staged letters form.
func (g *Game) handleWords(args []string) (string, error) {
	words := g.board.NewWords()
	if len(words) == 0 {
		return "no new words", nil
	}
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n"), nil
}

// handleCommit commits the staged letters: commit [verify].
func (g *Game) handleCommit(args []string) (string, error) {
	verify := g.verify
	switch {
	case len(args) == 1 && strings.EqualFold(args[0], "verify"):
		verify = true
	case len(args) != 0:
		return "", gameWarning("usage: commit [verify]")
	}
	points, err := g.board.CommitMove(verify)
	if err != nil {
		return "", warn(err)
	}
	g.player.recordMove(points)
	return fmt.Sprintf("scored %v points, total %v", points, g.player.score), nil
}

// handleClear removes all of the staged letters.
func (g *Game) handleClear(args []string) (string, error) {
	n := len(g.board.Pending())
	g.board.ClearPending()
	return fmt.Sprintf("cleared %v letters", n), nil
}

// handleShow draws the board.
func (g *Game) handleShow(args []string) (string, error) {
	return strings.TrimSuffix(g.board.String(), "\n"), nil
}

// handleScore shows the total score.
func (g *Game) handleScore(args []string) (string, error) {
	return fmt.Sprintf("total %v after %v moves", g.player.score, g.player.moves), nil
}

// handleHelp lists the commands.
func (g *Game) handleHelp(args []string) (string, error) {
	names := make([]string, 0, len(g.handlers))
	for name := range g.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return "commands: " + strings.Join(names, ", "), nil
}

// handleQuit stops the game.
func (g *Game) handleQuit(args []string) (string, error) {
	return fmt.Sprintf("final score %v", g.player.score), errQuit
}
