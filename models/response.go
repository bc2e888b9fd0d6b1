package models

type Response struct {
	Success bool `json:"success"`
}

// SearchStats summarizes a single completed search for the caller.
type SearchStats struct {
	Duration     int64 `json:"duration"`
	ResultsCount int   `json:"resultsCount"`
	SearchCount  int   `json:"searchCount"`
}

// SearchResult is the combined outcome of one search-by-address request.
type SearchResult struct {
	Address Address     `json:"address"`
	News    NewsResult  `json:"news"`
	Stats   SearchStats `json:"searchStats"`
}

type SearchResponse struct {
	Success     bool        `json:"success"`
	Address     Address     `json:"address"`
	News        NewsResult  `json:"news"`
	SearchStats SearchStats `json:"searchStats"`
}

type AddressesResponse struct {
	Success   bool      `json:"success"`
	Addresses []Address `json:"addresses"`
}

type AddressResponse struct {
	Success bool    `json:"success"`
	Address Address `json:"address"`
}

type DeleteAddressResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Address Address `json:"address"`
}

type StatsResponse struct {
	Success bool          `json:"success"`
	Stats   CombinedStats `json:"stats"`
}

type CombinedStats struct {
	Addresses AddressStats `json:"addresses"`
	Searches  HistoryStats `json:"searches"`
}

type HistoryResponse struct {
	Success bool                 `json:"success"`
	History []SearchHistoryEntry `json:"history"`
}
