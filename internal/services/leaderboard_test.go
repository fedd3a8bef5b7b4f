package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/stephenzhang0529/ai-app-server/internal/models"
	"github.com/stephenzhang0529/ai-app-server/internal/services"
)

func TestLeaderboardService_RecordScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockWriter := services.NewMockScoreWriter(ctrl)
		mockReader := services.NewMockScoreReader(ctrl)

		mockWriter.EXPECT().
			Save(gomock.Any(), int64(7), "snake", int64(42)).
			Return(nil)

		svc := services.NewLeaderboardService(mockWriter, mockReader, nil)

		err := svc.RecordScore(context.Background(), 7, "snake", 42)
		assert.NoError(t, err)
	})

	t.Run("storage error", func(t *testing.T) {
		mockWriter := services.NewMockScoreWriter(ctrl)
		mockReader := services.NewMockScoreReader(ctrl)

		mockWriter.EXPECT().
			Save(gomock.Any(), int64(7), "snake", int64(42)).
			Return(errors.New("insert failed"))

		svc := services.NewLeaderboardService(mockWriter, mockReader, nil)

		err := svc.RecordScore(context.Background(), 7, "snake", 42)
		assert.EqualError(t, err, "insert failed")
	})
}

func TestLeaderboardService_TopScores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := []models.LeaderboardEntry{
		{Username: "alice", Score: 50},
		{Username: "bob", Score: 30},
	}

	tests := []struct {
		name        string
		limit       int
		expectLimit int
	}{
		{name: "explicit limit", limit: 5, expectLimit: 5},
		{name: "zero limit falls back to default", limit: 0, expectLimit: 10},
		{name: "negative limit falls back to default", limit: -3, expectLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockScoreWriter(ctrl)
			mockReader := services.NewMockScoreReader(ctrl)

			mockReader.EXPECT().
				Top(gomock.Any(), "snake", tt.expectLimit).
				Return(entries, nil)

			svc := services.NewLeaderboardService(mockWriter, mockReader, nil)

			top, err := svc.TopScores(context.Background(), "snake", tt.limit)
			assert.NoError(t, err)
			assert.Equal(t, entries, top)
		})
	}
}

func TestLeaderboardService_TopScores_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockScoreWriter(ctrl)
	mockReader := services.NewMockScoreReader(ctrl)

	mockReader.EXPECT().
		Top(gomock.Any(), "snake", 10).
		Return(nil, errors.New("db error"))

	svc := services.NewLeaderboardService(mockWriter, mockReader, nil)

	top, err := svc.TopScores(context.Background(), "snake", 0)
	assert.EqualError(t, err, "db error")
	assert.Nil(t, top)
}
