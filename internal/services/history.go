package services

import (
	"context"
	"errors"

	"github.com/stephenzhang0529/ai-app-server/internal/logger"
	"github.com/stephenzhang0529/ai-app-server/internal/models"
)

var (
	// ErrPermissionDenied is returned when a non-admin caller uses an
	// admin-only search filter.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidFilter is returned for unknown filter types or missing values.
	ErrInvalidFilter = errors.New("invalid search filter")
)

// SessionWriter persists finished conversations.
type SessionWriter interface {
	Save(ctx context.Context, userID int64, modelName string, messages []string) error
}

// SessionSearcher runs storage-level chat history queries.
type SessionSearcher interface {
	Search(ctx context.Context, q models.SessionQuery) ([]models.SessionWithMessages, error)
}

// HistoryService records finished chat sessions and answers history searches.
type HistoryService struct {
	writer   SessionWriter
	searcher SessionSearcher
	events   KafkaWriter
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(writer SessionWriter, searcher SessionSearcher, events KafkaWriter) *HistoryService {
	return &HistoryService{
		writer:   writer,
		searcher: searcher,
		events:   events,
	}
}

// SaveSession persists one finished conversation atomically. Roles are
// assigned by index parity: even entries are user turns, odd entries are
// assistant turns. Alternation is the caller's responsibility.
//
// The activity event is best-effort and is published once the writer
// succeeds. When the write runs inside a request-scoped transaction the
// event can precede the commit, so a late rollback may leave a published
// event without a stored session. Consumers must not treat events as
// proof of persistence.
func (s *HistoryService) SaveSession(ctx context.Context, userID int64, modelName string, messages []string) error {
	if err := s.writer.Save(ctx, userID, modelName, messages); err != nil {
		logger.Log.Errorw("failed to save chat session", "userID", userID, "model", modelName, "error", err)
		return err
	}

	publishActivity(ctx, s.events, userID, models.ActionSessionSaved, modelName)
	return nil
}

// Search returns sessions with ordered messages matching the filter.
// Non-admin callers only ever see their own sessions; the by_username
// filter is admin-only.
func (s *HistoryService) Search(ctx context.Context, requesterID int64, isAdmin bool, filter models.SearchFilter) ([]models.SessionWithMessages, error) {
	var q models.SessionQuery

	switch filter.Type {
	case models.SearchByKeyword:
		q.Keyword = filter.Value
	case models.SearchByModel:
		q.Model = filter.Value
	case models.SearchByDate:
		q.Date = filter.Value
	case models.SearchByUsername:
		if !isAdmin {
			logger.Log.Errorw("non-admin attempted username search", "requesterID", requesterID)
			return nil, ErrPermissionDenied
		}
		q.User = filter.Value
	case models.SearchAll:
		// no content filter
	default:
		return nil, ErrInvalidFilter
	}

	if filter.Type != models.SearchAll && filter.Value == "" {
		return nil, ErrInvalidFilter
	}

	if !isAdmin {
		q.UserID = &requesterID
	}

	results, err := s.searcher.Search(ctx, q)
	if err != nil {
		logger.Log.Errorw("failed to search chat history", "requesterID", requesterID, "type", filter.Type, "error", err)
		return nil, err
	}
	return results, nil
}
