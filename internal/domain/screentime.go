package domain

import "time"

// AppUsage is per-category screen time in hours.
type AppUsage struct {
	Name string `json:"name"`
	Time int    `json:"time"`
}

// ScreenTimeStats is the live screen-time payload served by
// GET /api/screen-time.
type ScreenTimeStats struct {
	Daily       int        `json:"daily"`
	Weekly      int        `json:"weekly"`
	Apps        []AppUsage `json:"apps"`
	LastUpdated time.Time  `json:"lastUpdated"`
}
