package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/hasamishogi-backend/internal/apperror"
	"github.com/rocketscienceinc/hasamishogi-backend/internal/entity"
	"github.com/rocketscienceinc/hasamishogi-backend/internal/hasami"
	"github.com/rocketscienceinc/hasamishogi-backend/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	newID func() (string, error)
	now   func() time.Time
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,

		newID: pkg.GenerateGameID,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// StartGame creates a game in the starting position and stores it.
func (that *GameManager) StartGame(ctx context.Context, blackName, redName string) (*entity.Game, error) {
	gameID, err := that.newID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID,
		entity.NewPlayer(blackName, hasami.Black),
		entity.NewPlayer(redName, hasami.Red),
	)
	game.UpdatedAt = that.now()

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "gameID", game.ID)

	return game, nil
}

// ResumeGame loads an unfinished game.
func (that *GameManager) ResumeGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if game.IsFinished() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameFinished, id)
	}

	that.logger.Info("game resumed", "gameID", game.ID, "turn", game.Match.ActivePlayer().String())

	return game, nil
}

// MakeMove plays one move for the active player and stores the result. A rejected
// move is returned as an error and nothing is stored. The snapshot is removed once
// the game is won.
func (that *GameManager) MakeMove(ctx context.Context, game *entity.Game, source, destination string) (hasami.Outcome, error) {
	log := that.logger.With("method", "MakeMove", "gameID", game.ID)

	mover := game.Match.ActivePlayer()

	outcome, err := game.Match.Play(source, destination)
	if err != nil {
		log.Debug("move rejected", "source", source, "destination", destination, "error", err)
		return hasami.Outcome{}, fmt.Errorf("failed make move: %w", err)
	}

	game.UpdatedAt = that.now()

	log.Debug("move played",
		"player", mover.String(),
		"source", outcome.Source.String(),
		"destination", outcome.Destination.String(),
		"captured", len(outcome.Captured),
		"corner", outcome.CornerCapture,
	)

	if game.IsFinished() {
		log.Info("game finished", "state", outcome.State.String())
		that.deleteGame(ctx, game)

		return outcome, nil
	}

	if err = that.updateGame(ctx, game); err != nil {
		return outcome, fmt.Errorf("failed update game: %w", err)
	}

	return outcome, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame", "gameID", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted")
}
