package models

import (
	"time"

	"github.com/volatiletech/null"
)

// DefaultCountry is assumed when the searched text carries no country segment.
const DefaultCountry = "USA"

type Address struct {
	ID             int          `json:"id" db:"id"`
	UserID         int          `json:"userId" db:"user_id"`
	AddressText    string       `json:"addressText" db:"address_text"`
	City           null.String  `json:"city" db:"city"`
	State          null.String  `json:"state" db:"state"`
	Country        null.String  `json:"country" db:"country"`
	PostalCode     null.String  `json:"postalCode" db:"postal_code"`
	Latitude       null.Float64 `json:"latitude" db:"latitude"`
	Longitude      null.Float64 `json:"longitude" db:"longitude"`
	SearchCount    int          `json:"searchCount" db:"search_count"`
	CreatedAt      time.Time    `json:"createdAt" db:"created_at"`
	LastSearchedAt time.Time    `json:"lastSearchedAt" db:"last_searched_at"`
}

// AddressData holds the parsed components of a raw search string. Invalid
// null fields never overwrite stored values on upsert.
type AddressData struct {
	AddressText string       `json:"addressText"`
	City        null.String  `json:"city"`
	State       null.String  `json:"state"`
	Country     null.String  `json:"country"`
	PostalCode  null.String  `json:"postalCode"`
	Latitude    null.Float64 `json:"latitude"`
	Longitude   null.Float64 `json:"longitude"`
}

// AddressPatch is a partial update; only valid fields are applied.
type AddressPatch struct {
	AddressText null.String  `json:"addressText"`
	City        null.String  `json:"city"`
	State       null.String  `json:"state"`
	Country     null.String  `json:"country"`
	PostalCode  null.String  `json:"postalCode"`
	Latitude    null.Float64 `json:"latitude"`
	Longitude   null.Float64 `json:"longitude"`
}

type AddressStats struct {
	TotalAddresses int        `json:"totalAddresses" db:"total_addresses"`
	TotalQueries   null.Int64 `json:"totalQueries" db:"total_queries"`
	LastSearch     null.Time  `json:"lastSearch" db:"last_search"`
	UniqueCities   int        `json:"uniqueCities" db:"unique_cities"`
	UniqueStates   int        `json:"uniqueStates" db:"unique_states"`
}
