package domain

import "time"

// ScreenTimeSummary is the persisted slice of screen-time data. The live
// numbers come from the screen-time provider; this is just what the
// dashboard last saved.
type ScreenTimeSummary struct {
	Daily  float64 `json:"daily"`
	Weekly float64 `json:"weekly"`
}

// ProductivityState is the singleton productivity document. Every save
// overwrites the whole file, so callers must merge into the full state
// before persisting or fields vanish; Normalize keeps the collections
// non-nil so a partial client payload can never null them out.
type ProductivityState struct {
	Books         []Book            `json:"books"`
	ScreenTime    ScreenTimeSummary `json:"screenTime"`
	JournalPhotos []JournalPhoto    `json:"journalPhotos"`
	NotionTasks   []any             `json:"notionTasks"`
	LastUpdated   time.Time         `json:"lastUpdated"`
}

// DefaultProductivityState returns the empty document served (and created)
// when no file exists yet.
func DefaultProductivityState() *ProductivityState {
	return &ProductivityState{
		Books:         []Book{},
		JournalPhotos: []JournalPhoto{},
		NotionTasks:   []any{},
		LastUpdated:   time.Now().UTC(),
	}
}

// Normalize replaces nil collections with empty ones.
func (s *ProductivityState) Normalize() {
	if s.Books == nil {
		s.Books = []Book{}
	}
	if s.JournalPhotos == nil {
		s.JournalPhotos = []JournalPhoto{}
	}
	if s.NotionTasks == nil {
		s.NotionTasks = []any{}
	}
}

// Touch refreshes the LastUpdated stamp.
func (s *ProductivityState) Touch() {
	s.LastUpdated = time.Now().UTC()
}
