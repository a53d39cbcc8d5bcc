package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/hasamishogi-backend/internal/apperror"
	"github.com/rocketscienceinc/hasamishogi-backend/internal/entity"
	"github.com/rocketscienceinc/hasamishogi-backend/internal/hasami"
)

const (
	commandQuit  = "quit"
	commandBoard = "board"
)

var errQuit = errors.New("player quit")

// ruleErrors are answered with a retry prompt; anything else stops the loop.
var ruleErrors = []error{
	hasami.ErrOutOfRange,
	hasami.ErrNotOrthogonal,
	hasami.ErrWrongOwner,
	hasami.ErrPathBlocked,
	apperror.ErrGameFinished,
}

type gameUseCase interface {
	MakeMove(ctx context.Context, game *entity.Game, source, destination string) (hasami.Outcome, error)
}

// Console plays one game over a line based text stream.
type Console struct {
	logger *slog.Logger
	games  gameUseCase

	in  io.Reader
	out io.Writer

	resumable bool
}

type Option func(*Console)

// WithResumeHint tells the player how to resume a game left unfinished.
// Only use it when games outlive the process.
func WithResumeHint() Option {
	return func(c *Console) {
		c.resumable = true
	}
}

func New(logger *slog.Logger, games gameUseCase, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		logger: logger.With("component", "console"),
		games:  games,
		in:     in,
		out:    out,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run prompts the active player for moves until the game ends, the input is
// closed, the player types "quit" or ctx is cancelled.
func (that *Console) Run(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "Run", "gameID", game.ID)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, that.in)

	that.printf("Game %s\n", game.ID)

	for !game.IsFinished() {
		that.printBoard(game)

		err := that.turn(ctx, game, lines)
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			that.printLeft(game)
			log.Info("console closed before the end of the game")
			return nil
		}

		if err != nil {
			return err
		}
	}

	that.printf("%s\n", game.Match.State())
	that.printBoard(game)

	if winner := game.Winner(); winner != nil {
		that.printf("%s wins\n", winner.DisplayName())
	}

	return nil
}

func (that *Console) printLeft(game *entity.Game) {
	if that.resumable {
		that.printf("Game %s saved, resume it with resume-game-id: %s\n", game.ID, game.ID)
		return
	}

	that.printf("Game %s left unfinished, it is not saved\n", game.ID)
}

func (that *Console) turn(ctx context.Context, game *entity.Game, lines <-chan string) error {
	that.printf("%s, it is your turn: \n", activeName(game))

	source, err := that.prompt(ctx, lines, "Choose the piece to move: ")
	if err != nil {
		return err
	}

	switch strings.ToLower(source) {
	case commandQuit:
		return errQuit
	case commandBoard, "":
		return nil
	}

	var destination string
	if fields := strings.Fields(source); len(fields) == 2 {
		source, destination = fields[0], fields[1]
	} else {
		destination, err = that.prompt(ctx, lines, "Choose your destination: ")
		if err != nil {
			return err
		}
	}

	outcome, err := that.games.MakeMove(ctx, game, source, destination)
	if isRuleError(err) {
		that.printf("%v\n", false)
		that.printf("Illegal move: %v\n", err)
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to make move: %w", err)
	}

	that.printf("%v\n", true)
	that.reportCaptures(outcome)

	return nil
}

func (that *Console) prompt(ctx context.Context, lines <-chan string, text string) (string, error) {
	that.printf("%s", text)

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("console interrupted: %w", ctx.Err())
	case line, ok := <-lines:
		if !ok {
			return "", io.EOF
		}

		return strings.TrimSpace(line), nil
	}
}

func (that *Console) reportCaptures(outcome hasami.Outcome) {
	if len(outcome.Captured) == 0 {
		return
	}

	squares := make([]string, 0, len(outcome.Captured))
	for _, coord := range outcome.Captured {
		squares = append(squares, coord.String())
	}

	that.printf("Captured: %s\n", strings.Join(squares, " "))

	if outcome.CornerCapture {
		that.printf("Corner capture!\n")
	}
}

func (that *Console) printBoard(game *entity.Game) {
	that.printf("%s", game.Match)
	that.printf("Lost pieces: %s %d, %s %d\n",
		hasami.Black, game.Match.CapturedCount(hasami.Black),
		hasami.Red, game.Match.CapturedCount(hasami.Red),
	)
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write to console", "error", err)
	}
}

func activeName(game *entity.Game) string {
	if player := game.ActivePlayer(); player != nil {
		return player.DisplayName()
	}

	return game.Match.ActivePlayer().String()
}

func isRuleError(err error) bool {
	if err == nil {
		return false
	}

	for _, target := range ruleErrors {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// readLines feeds input lines into a channel that is closed at EOF. Once ctx
// is done an io.Closer input is closed so that a blocked read returns.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	if closer, ok := in.(io.Closer); ok {
		go func() {
			<-ctx.Done()
			_ = closer.Close()
		}()
	}

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}
