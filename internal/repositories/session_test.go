package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stephenzhang0529/ai-app-server/internal/models"
)

func TestSessionWriteRepository_Save_ParityRoles(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db)
	sessionWrite := NewSessionWriteRepository(db)
	ctx := context.Background()

	userID, err := userWrite.Save(ctx, "alice", "alice@example.com", "h")
	assert.NoError(t, err)

	messages := []string{"question 1", "answer 1", "question 2", "answer 2", "question 3"}
	err = sessionWrite.Save(ctx, userID, "deepseek-ai/DeepSeek-V3", messages)
	assert.NoError(t, err)

	var rows []struct {
		Role    string `db:"role"`
		Content string `db:"content"`
	}
	err = db.Select(&rows, "SELECT role, content FROM chat_messages ORDER BY message_id ASC")
	assert.NoError(t, err)
	assert.Len(t, rows, 5)

	for i, row := range rows {
		assert.Equal(t, messages[i], row.Content)
		if i%2 == 0 {
			assert.Equal(t, models.RoleUser, row.Role)
		} else {
			assert.Equal(t, models.RoleAssistant, row.Role)
		}
	}
}

func TestSessionWriteRepository_Save_RollsBackOnBadUser(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	sessionWrite := NewSessionWriteRepository(db)
	ctx := context.Background()

	// No such user: the FK rejects the session insert and nothing persists
	err := sessionWrite.Save(ctx, 9999, "some-model", []string{"hi"})
	assert.Error(t, err)

	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM chat_sessions"))
	assert.Equal(t, 0, count)
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM chat_messages"))
	assert.Equal(t, 0, count)
}

func TestSessionReadRepository_Search(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db)
	sessionWrite := NewSessionWriteRepository(db)
	sessionRead := NewSessionReadRepository(db)
	ctx := context.Background()

	aliceID, err := userWrite.Save(ctx, "alice", "alice@example.com", "h")
	assert.NoError(t, err)
	bobID, err := userWrite.Save(ctx, "bob", "bob@example.com", "h")
	assert.NoError(t, err)

	assert.NoError(t, sessionWrite.Save(ctx, aliceID, "model-a", []string{"tell me about go", "go is a language"}))
	assert.NoError(t, sessionWrite.Save(ctx, aliceID, "model-b", []string{"weather today", "sunny"}))
	assert.NoError(t, sessionWrite.Save(ctx, bobID, "model-a", []string{"go routines", "they are cheap"}))

	// Keyword filter matches message content
	results, err := sessionRead.Search(ctx, models.SessionQuery{Keyword: "go"})
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	for _, s := range results {
		// Matching sessions carry their full ordered message list
		assert.Len(t, s.Messages, 2)
		assert.Equal(t, models.RoleUser, s.Messages[0].Role)
		assert.Equal(t, models.RoleAssistant, s.Messages[1].Role)
	}

	// Model filter is exact
	results, err = sessionRead.Search(ctx, models.SessionQuery{Model: "model-b"})
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "alice", results[0].Username)

	// Owner restriction drops other users' sessions
	results, err = sessionRead.Search(ctx, models.SessionQuery{Keyword: "go", UserID: &bobID})
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "bob", results[0].Username)

	// Username substring filter
	results, err = sessionRead.Search(ctx, models.SessionQuery{User: "ali"})
	assert.NoError(t, err)
	assert.Len(t, results, 2)

	// No filters: everything
	results, err = sessionRead.Search(ctx, models.SessionQuery{})
	assert.NoError(t, err)
	assert.Len(t, results, 3)

	// No match: empty result, no error
	results, err = sessionRead.Search(ctx, models.SessionQuery{Keyword: "nonexistent"})
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestSessionReadRepository_Search_ByDate(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db)
	sessionRead := NewSessionReadRepository(db)
	ctx := context.Background()

	userID, err := userWrite.Save(ctx, "alice", "alice@example.com", "h")
	assert.NoError(t, err)

	// Insert sessions on two distinct days directly, bypassing the clock
	insert := func(startedAt string) {
		res, err := db.Exec(
			"INSERT INTO chat_sessions (user_id, model_name, started_at) VALUES (?, ?, ?)",
			userID, "model-a", startedAt,
		)
		assert.NoError(t, err)
		sessionID, err := res.LastInsertId()
		assert.NoError(t, err)
		_, err = db.Exec(
			"INSERT INTO chat_messages (session_id, role, content, created_at) VALUES (?, ?, ?, ?)",
			sessionID, models.RoleUser, "hello", startedAt,
		)
		assert.NoError(t, err)
	}
	insert("2026-03-01 09:30:00")
	insert("2026-03-02 18:45:00")

	results, err := sessionRead.Search(ctx, models.SessionQuery{Date: "2026-03-01"})
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "2026-03-01", results[0].StartedAt.Format("2006-01-02"))
}

func TestSessionReadRepository_Search_NewestFirst(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db)
	sessionRead := NewSessionReadRepository(db)
	ctx := context.Background()

	userID, err := userWrite.Save(ctx, "alice", "alice@example.com", "h")
	assert.NoError(t, err)

	insert := func(startedAt string) {
		res, err := db.Exec(
			"INSERT INTO chat_sessions (user_id, model_name, started_at) VALUES (?, ?, ?)",
			userID, "model-a", startedAt,
		)
		assert.NoError(t, err)
		sessionID, _ := res.LastInsertId()
		_, err = db.Exec(
			"INSERT INTO chat_messages (session_id, role, content, created_at) VALUES (?, ?, ?, ?)",
			sessionID, models.RoleUser, "hello", startedAt,
		)
		assert.NoError(t, err)
	}
	insert("2026-03-01 09:00:00")
	insert("2026-03-03 09:00:00")
	insert("2026-03-02 09:00:00")

	results, err := sessionRead.Search(ctx, models.SessionQuery{})
	assert.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, "2026-03-03", results[0].StartedAt.Format("2006-01-02"))
	assert.Equal(t, "2026-03-02", results[1].StartedAt.Format("2006-01-02"))
	assert.Equal(t, "2026-03-01", results[2].StartedAt.Format("2006-01-02"))
}
