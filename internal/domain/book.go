// Package domain defines the entities persisted by the hub: books, blog
// posts, journal photos, and the productivity document that ties them
// together.
package domain

import (
	"strconv"
	"strings"
	"time"

	domainerrors "github.com/portfoliohub/hub-server/internal/errors"
)

// BookStatus describes where a book sits in the reading pipeline.
type BookStatus string

// Book statuses.
const (
	StatusReading   BookStatus = "reading"
	StatusCompleted BookStatus = "completed"
	StatusPaused    BookStatus = "paused"
	StatusAbandoned BookStatus = "abandoned"
)

// Valid reports whether s is a known status.
func (s BookStatus) Valid() bool {
	switch s {
	case StatusReading, StatusCompleted, StatusPaused, StatusAbandoned:
		return true
	}
	return false
}

// Book is a single tracked book in the productivity document.
//
// Progress is stored exactly as submitted. The dashboard renders it as a
// percentage but the server has never clamped it, and existing documents
// contain out-of-range values; clamping now would silently rewrite them.
type Book struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Progress  int        `json:"progress"`
	Status    BookStatus `json:"status"`
	StartDate string     `json:"startDate"`
	Notes     string     `json:"notes"`
}

// NewBook builds a validated Book. The ID is the creation time in
// millisecond precision, matching every record already on disk; uniqueness
// relies on timestamp granularity only.
func NewBook(title, author string, progress int, status BookStatus, startDate, notes string) (*Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if title == "" {
		return nil, domainerrors.Validation("book title is required")
	}
	if author == "" {
		return nil, domainerrors.Validation("book author is required")
	}

	if status == "" {
		status = StatusReading
	}
	if !status.Valid() {
		return nil, domainerrors.Validationf("unknown book status %q", status)
	}

	now := time.Now()
	if startDate == "" {
		startDate = now.UTC().Format(time.RFC3339)
	}

	return &Book{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Title:     title,
		Author:    author,
		Progress:  progress,
		Status:    status,
		StartDate: startDate,
		Notes:     notes,
	}, nil
}
