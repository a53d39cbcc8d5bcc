package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/hasamishogi-backend/internal/config"
	"github.com/rocketscienceinc/hasamishogi-backend/internal/entity"
	"github.com/rocketscienceinc/hasamishogi-backend/internal/repository"
	"github.com/rocketscienceinc/hasamishogi-backend/internal/repository/storage"
	"github.com/rocketscienceinc/hasamishogi-backend/internal/usecase"
	"github.com/rocketscienceinc/hasamishogi-backend/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one game on the given terminal streams.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	gameManager := usecase.NewGameManager(logger, gameRepo)

	game, err := openGame(ctx, gameManager, conf)
	if err != nil {
		return err
	}

	log.Info("Starting console", "gameID", game.ID)

	var consoleOpts []console.Option
	if conf.Redis.Enabled {
		consoleOpts = append(consoleOpts, console.WithResumeHint())
	}

	if err = console.New(logger, gameManager, in, out, consoleOpts...).Run(ctx, game); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("Redis disabled, games are kept in memory")
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == ":" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage.Connection, conf.Redis.TTL), closeFn, nil
}

func openGame(ctx context.Context, gameManager *usecase.GameManager, conf *config.Config) (*entity.Game, error) {
	if conf.ResumeGameID != "" {
		game, err := gameManager.ResumeGame(ctx, conf.ResumeGameID)
		if err != nil {
			return nil, fmt.Errorf("could not resume game: %w", err)
		}

		return game, nil
	}

	game, err := gameManager.StartGame(ctx, conf.Players.Black, conf.Players.Red)
	if err != nil {
		return nil, fmt.Errorf("could not start game: %w", err)
	}

	return game, nil
}
