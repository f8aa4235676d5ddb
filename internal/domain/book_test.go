package domain

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	book, err := NewBook("The Left Hand of Darkness", "Ursula K. Le Guin", 40, StatusReading, "", "")
	require.NoError(t, err)

	assert.Equal(t, "The Left Hand of Darkness", book.Title)
	assert.Equal(t, StatusReading, book.Status)
	assert.NotEmpty(t, book.StartDate)

	// ID is a millisecond timestamp string.
	millis, err := strconv.ParseInt(book.ID, 10, 64)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), time.UnixMilli(millis), time.Minute)
}

func TestNewBookDefaultsStatus(t *testing.T) {
	book, err := NewBook("Piranesi", "Susanna Clarke", 0, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, StatusReading, book.Status)
}

func TestNewBookRequiresTitleAndAuthor(t *testing.T) {
	_, err := NewBook("", "Someone", 0, StatusReading, "", "")
	assert.Error(t, err)

	_, err = NewBook("Something", "   ", 0, StatusReading, "", "")
	assert.Error(t, err)
}

func TestNewBookRejectsUnknownStatus(t *testing.T) {
	_, err := NewBook("Title", "Author", 0, "someday", "", "")
	assert.Error(t, err)
}

// Progress is deliberately not clamped: out-of-range values round-trip
// unchanged because existing documents already contain them.
func TestNewBookKeepsOutOfRangeProgress(t *testing.T) {
	book, err := NewBook("Title", "Author", 150, StatusReading, "", "")
	require.NoError(t, err)
	assert.Equal(t, 150, book.Progress)
}
