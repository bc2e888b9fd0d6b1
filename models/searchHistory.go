package models

import (
	"time"

	"github.com/volatiletech/null"
)

type SearchHistory struct {
	ID               int       `json:"id" db:"id"`
	UserID           int       `json:"userId" db:"user_id"`
	AddressID        int       `json:"addressId" db:"address_id"`
	SearchQuery      string    `json:"searchQuery" db:"search_query"`
	ResultsCount     int       `json:"resultsCount" db:"results_count"`
	SearchDurationMs int       `json:"searchDurationMs" db:"search_duration_ms"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

// SearchHistoryEntry is a history row enriched with its address via join.
type SearchHistoryEntry struct {
	SearchHistory
	AddressText string      `json:"addressText" db:"address_text"`
	City        null.String `json:"city" db:"city"`
	State       null.String `json:"state" db:"state"`
}

// SearchRecord is the payload appended to the history log after a search.
type SearchRecord struct {
	SearchQuery      string `json:"searchQuery"`
	ResultsCount     int    `json:"resultsCount"`
	SearchDurationMs int    `json:"searchDurationMs"`
}

type HistoryStats struct {
	TotalSearches int          `json:"totalSearches" db:"total_searches"`
	AvgResults    null.Float64 `json:"avgResultsCount" db:"avg_results"`
	AvgDurationMs null.Float64 `json:"avgDurationMs" db:"avg_duration"`
	FirstSearch   null.Time    `json:"firstSearch" db:"first_search"`
	LastSearch    null.Time    `json:"lastSearch" db:"last_search"`
}
