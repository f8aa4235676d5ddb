package domain

import "time"

// JournalPhoto is the metadata record for one uploaded photo. The image
// bytes live in the uploads directory; Filename links the two and is the
// deletion key.
type JournalPhoto struct {
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Path         string    `json:"path"`
	Date         time.Time `json:"date"`
	Caption      string    `json:"caption"`
	BlurHash     string    `json:"blurHash,omitempty"`
}
