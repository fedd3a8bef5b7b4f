package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreWriteRepository_Save(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db)
	scoreWrite := NewScoreWriteRepository(db)
	ctx := context.Background()

	userID, err := userWrite.Save(ctx, "alice", "alice@example.com", "h")
	assert.NoError(t, err)

	assert.NoError(t, scoreWrite.Save(ctx, userID, "snake", 10))
	assert.NoError(t, scoreWrite.Save(ctx, userID, "snake", 25))

	// Every play is kept as its own row
	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM game_high_scores"))
	assert.Equal(t, 2, count)
}

func TestScoreReadRepository_Top(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db)
	scoreRead := NewScoreReadRepository(db)
	ctx := context.Background()

	aliceID, err := userWrite.Save(ctx, "alice", "alice@example.com", "h")
	assert.NoError(t, err)
	bobID, err := userWrite.Save(ctx, "bob", "bob@example.com", "h")
	assert.NoError(t, err)

	insert := func(userID, score int64, playedAt string) {
		_, err := db.Exec(
			"INSERT INTO game_high_scores (user_id, game_name, score, played_at) VALUES (?, ?, ?, ?)",
			userID, "snake", score, playedAt,
		)
		assert.NoError(t, err)
	}
	insert(aliceID, 30, "2026-03-01 10:00:00")
	insert(bobID, 50, "2026-03-01 11:00:00")
	insert(aliceID, 50, "2026-03-01 09:00:00") // same score, earlier play
	insert(bobID, 10, "2026-03-01 12:00:00")

	top, err := scoreRead.Top(ctx, "snake", 3)
	assert.NoError(t, err)
	assert.Len(t, top, 3)

	// Highest score first; ties rank the earlier play higher
	assert.Equal(t, int64(50), top[0].Score)
	assert.Equal(t, "alice", top[0].Username)
	assert.Equal(t, int64(50), top[1].Score)
	assert.Equal(t, "bob", top[1].Username)
	assert.Equal(t, int64(30), top[2].Score)
}

func TestScoreReadRepository_Top_FiltersByGame(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db)
	scoreWrite := NewScoreWriteRepository(db)
	scoreRead := NewScoreReadRepository(db)
	ctx := context.Background()

	userID, err := userWrite.Save(ctx, "alice", "alice@example.com", "h")
	assert.NoError(t, err)

	assert.NoError(t, scoreWrite.Save(ctx, userID, "snake", 10))
	assert.NoError(t, scoreWrite.Save(ctx, userID, "tetris", 99))

	top, err := scoreRead.Top(ctx, "snake", 10)
	assert.NoError(t, err)
	assert.Len(t, top, 1)
	assert.Equal(t, int64(10), top[0].Score)
}

func TestScoreReadRepository_Top_EmptyGame(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	scoreRead := NewScoreReadRepository(db)

	top, err := scoreRead.Top(context.Background(), "unknown-game", 10)
	assert.NoError(t, err)
	assert.Empty(t, top)
}
