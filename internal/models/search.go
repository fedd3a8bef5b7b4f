package models

// SearchType selects how chat history is filtered.
type SearchType string

const (
	SearchByKeyword  SearchType = "by_keyword"  // substring match on message content
	SearchByModel    SearchType = "by_model"    // exact match on session model name
	SearchByDate     SearchType = "by_date"     // date portion of started_at, YYYY-MM-DD
	SearchByUsername SearchType = "by_username" // admin-only substring match on username
	SearchAll        SearchType = "all"         // no content filter
)

// SearchFilter describes one chat history query.
type SearchFilter struct {
	Type  SearchType `json:"type"`
	Value string     `json:"value"`
}

// SessionQuery is the storage-level chat history query; authorization is
// decided by the service layer before it is built.
type SessionQuery struct {
	UserID  *int64 // restrict to this owner; nil means all users
	Keyword string // substring on message content
	Model   string // exact model name
	Date    string // YYYY-MM-DD against the date part of started_at
	User    string // substring on username
}

// UserFilter narrows user listings by username or email substring.
// Zero value means no filtering.
type UserFilter struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
