package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hasamishogi-backend/internal/apperror"
	"github.com/rocketscienceinc/hasamishogi-backend/internal/entity"
	"github.com/rocketscienceinc/hasamishogi-backend/internal/hasami"
)

var (
	errRedisDown  = errors.New("redis down")
	errNoEntropy  = errors.New("no entropy")
	fixedTime     = time.Date(2021, time.November, 21, 12, 0, 0, 0, time.UTC)
	discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func newTestManager(t *testing.T) (*GameManager, *mockGameRepo) {
	t.Helper()

	repo := &mockGameRepo{}
	t.Cleanup(func() { repo.AssertExpectations(t) })

	manager := NewGameManager(discardLogger, repo)
	manager.newID = func() (string, error) { return "123", nil }
	manager.now = func() time.Time { return fixedTime }

	return manager, repo
}

func TestGameManager_StartGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates and stores a new game", func(t *testing.T) {
		// Given: a repository that accepts the game
		manager, repo := newTestManager(t)
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: starting a game
		game, err := manager.StartGame(ctx, "alice", "")

		// Then: the game is in the starting position with both players assigned
		require.NoError(t, err)
		assert.Equal(t, "123", game.ID)
		assert.Equal(t, fixedTime, game.UpdatedAt)
		assert.Equal(t, "alice", game.PlayerFor(hasami.Black).Name)
		assert.Equal(t, "RED", game.PlayerFor(hasami.Red).Name)
		assert.Equal(t, hasami.Black, game.Match.ActivePlayer())
	})

	t.Run("Storage failure", func(t *testing.T) {
		// Given: a repository that is down
		manager, repo := newTestManager(t)
		repo.On("CreateOrUpdate", ctx, mock.Anything).Return(errRedisDown).Once()

		// When: starting a game
		game, err := manager.StartGame(ctx, "alice", "bob")

		// Then: the error is returned
		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})

	t.Run("ID generation failure", func(t *testing.T) {
		// Given: an id generator that fails
		manager, _ := newTestManager(t)
		manager.newID = func() (string, error) { return "", errNoEntropy }

		// When: starting a game
		_, err := manager.StartGame(ctx, "alice", "bob")

		// Then: nothing is stored and the error is returned
		require.ErrorIs(t, err, errNoEntropy)
	})
}

func TestGameManager_ResumeGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored game", func(t *testing.T) {
		// Given: a stored unfinished game
		manager, repo := newTestManager(t)
		stored := entity.NewGame("123")
		repo.On("GetByID", ctx, "123").Return(stored, nil).Once()

		// When: resuming it
		game, err := manager.ResumeGame(ctx, "123")

		// Then: it is returned as is
		require.NoError(t, err)
		assert.Same(t, stored, game)
	})

	t.Run("Unknown game", func(t *testing.T) {
		// Given: nothing stored
		manager, repo := newTestManager(t)
		repo.On("GetByID", ctx, "404").Return(nil, apperror.ErrGameNotFound).Once()

		// When: resuming it
		_, err := manager.ResumeGame(ctx, "404")

		// Then: ErrGameNotFound is returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameManager_MakeMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted move is stored", func(t *testing.T) {
		// Given: a new game
		manager, repo := newTestManager(t)
		game := entity.NewGame("123")
		repo.On("CreateOrUpdate", ctx, game).Return(nil).Once()

		// When: black moves
		outcome, err := manager.MakeMove(ctx, game, "a1", "e1")

		// Then: the move is applied and saved
		require.NoError(t, err)
		assert.Equal(t, hasami.InProgress, outcome.State)
		assert.Equal(t, hasami.Red, game.Match.ActivePlayer())
		assert.Equal(t, fixedTime, game.UpdatedAt)
	})

	t.Run("Rejected move is not stored", func(t *testing.T) {
		// Given: a new game and a repository that expects no calls
		manager, _ := newTestManager(t)
		game := entity.NewGame("123")

		// When: black tries a diagonal
		_, err := manager.MakeMove(ctx, game, "a1", "b2")

		// Then: the rule error is returned
		require.ErrorIs(t, err, hasami.ErrNotOrthogonal)
		assert.Equal(t, hasami.Black, game.Match.ActivePlayer())
	})

	t.Run("Storage failure after an accepted move", func(t *testing.T) {
		// Given: a repository that is down
		manager, repo := newTestManager(t)
		game := entity.NewGame("123")
		repo.On("CreateOrUpdate", ctx, game).Return(errRedisDown).Once()

		// When: black moves
		_, err := manager.MakeMove(ctx, game, "a1", "e1")

		// Then: the storage error is returned
		require.ErrorIs(t, err, errRedisDown)
	})

	t.Run("Winning move deletes the snapshot", func(t *testing.T) {
		// Given: red has lost seven pieces and black can take the eighth
		manager, repo := newTestManager(t)
		game := winningPosition(t)
		repo.On("DeleteByID", ctx, game.ID).Return(nil).Once()

		// When: black captures
		outcome, err := manager.MakeMove(ctx, game, "a3", "e3")

		// Then: black has won and the snapshot is removed
		require.NoError(t, err)
		assert.Equal(t, hasami.BlackWon, outcome.State)
		assert.True(t, game.IsFinished())
	})

	t.Run("Delete failure on a finished game is only logged", func(t *testing.T) {
		// Given: a repository that cannot delete
		manager, repo := newTestManager(t)
		game := winningPosition(t)
		repo.On("DeleteByID", ctx, game.ID).Return(errRedisDown).Once()

		// When: black captures
		outcome, err := manager.MakeMove(ctx, game, "a3", "e3")

		// Then: the move still succeeds
		require.NoError(t, err)
		assert.Equal(t, hasami.BlackWon, outcome.State)
	})

	t.Run("Move after the end", func(t *testing.T) {
		// Given: a finished game
		manager, repo := newTestManager(t)
		game := winningPosition(t)
		repo.On("DeleteByID", ctx, game.ID).Return(nil).Once()
		_, err := manager.MakeMove(ctx, game, "a3", "e3")
		require.NoError(t, err)

		// When: red tries to move
		_, err = manager.MakeMove(ctx, game, "i9", "h9")

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

// winningPosition builds a game where black a3-e3 captures red's eighth piece.
func winningPosition(t *testing.T) *entity.Game {
	t.Helper()

	data := []byte(`{
		"id": "777",
		"match": {
			"board": [
				"..B......",
				".........",
				".........",
				".........",
				"BR.......",
				".........",
				".........",
				".........",
				"........R"
			],
			"turn": "BLACK",
			"state": "UNFINISHED",
			"captured": {"BLACK": 7, "RED": 7}
		}
	}`)

	var game entity.Game
	require.NoError(t, json.Unmarshal(data, &game))

	return &game
}
