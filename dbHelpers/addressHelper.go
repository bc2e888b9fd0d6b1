package dbHelpers

import (
	"fmt"
	"strings"

	"github.com/RemoteState/localnews-server/database"
	"github.com/RemoteState/localnews-server/models"
)

const addressColumns = `id, user_id, address_text, city, state, country, postal_code, latitude, longitude, search_count, created_at, last_searched_at`

//UpsertAddress inserts a new address for the user or, when the same text was
//already searched (case-insensitively), bumps its search count and timestamp.
//Optional fields only fill columns that are still null; a null incoming value
//never overwrites a stored one. Single statement, so concurrent searches for
//the same new text cannot produce duplicate rows.
func UpsertAddress(userID int, data models.AddressData) (models.Address, error) {
	query := `
		INSERT INTO addresses (user_id, address_text, city, state, country, postal_code, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, lower(address_text)) DO UPDATE
		SET search_count     = addresses.search_count + 1,
			last_searched_at = now(),
			city             = COALESCE(EXCLUDED.city, addresses.city),
			state            = COALESCE(EXCLUDED.state, addresses.state),
			country          = COALESCE(EXCLUDED.country, addresses.country),
			postal_code      = COALESCE(EXCLUDED.postal_code, addresses.postal_code),
			latitude         = COALESCE(EXCLUDED.latitude, addresses.latitude),
			longitude        = COALESCE(EXCLUDED.longitude, addresses.longitude)
		RETURNING ` + addressColumns

	address := models.Address{}
	err := database.LocalNewsDB.Get(&address, query, userID, data.AddressText, data.City, data.State, data.Country, data.PostalCode, data.Latitude, data.Longitude)
	return address, err
}

//SelectAddressByUserAndText returns the user's address matching the given text
//case-insensitively, or sql.ErrNoRows
func SelectAddressByUserAndText(userID int, addressText string) (models.Address, error) {
	query := `SELECT ` + addressColumns + `
				FROM addresses
				WHERE user_id = $1 AND lower(address_text) = lower($2)`

	address := models.Address{}
	err := database.LocalNewsDB.Get(&address, query, userID, addressText)
	return address, err
}

//SelectAllAddresses returns every address of the user, most recently searched first
func SelectAllAddresses(userID int) ([]models.Address, error) {
	query := `SELECT ` + addressColumns + `
				FROM addresses
				WHERE user_id = $1
				ORDER BY last_searched_at DESC`

	addresses := make([]models.Address, 0)
	err := database.LocalNewsDB.Select(&addresses, query, userID)
	return addresses, err
}

//SelectAddressByID returns the address with the given id, or sql.ErrNoRows
func SelectAddressByID(id int) (models.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`

	address := models.Address{}
	err := database.LocalNewsDB.Get(&address, query, id)
	return address, err
}

//UpdateAddress applies the valid fields of the patch to the address with the
//given id and returns the updated row, or sql.ErrNoRows if the id is unknown
func UpdateAddress(id int, patch models.AddressPatch) (models.Address, error) {
	setClauses := make([]string, 0)
	args := []interface{}{id}
	set := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.AddressText.Valid {
		set("address_text", patch.AddressText)
	}
	if patch.City.Valid {
		set("city", patch.City)
	}
	if patch.State.Valid {
		set("state", patch.State)
	}
	if patch.Country.Valid {
		set("country", patch.Country)
	}
	if patch.PostalCode.Valid {
		set("postal_code", patch.PostalCode)
	}
	if patch.Latitude.Valid {
		set("latitude", patch.Latitude)
	}
	if patch.Longitude.Valid {
		set("longitude", patch.Longitude)
	}

	if len(setClauses) == 0 {
		return SelectAddressByID(id)
	}

	query := fmt.Sprintf(`UPDATE addresses SET %s WHERE id = $1 RETURNING %s`, strings.Join(setClauses, ", "), addressColumns)

	address := models.Address{}
	err := database.LocalNewsDB.Get(&address, query, args...)
	return address, err
}

//DeleteAddress removes the address and returns the removed row, or
//sql.ErrNoRows if the id is unknown. History rows cascade in the database.
func DeleteAddress(id int) (models.Address, error) {
	query := `DELETE FROM addresses WHERE id = $1 RETURNING ` + addressColumns

	address := models.Address{}
	err := database.LocalNewsDB.Get(&address, query, id)
	return address, err
}

//AddressSearchStats aggregates the user's stored addresses
func AddressSearchStats(userID int) (models.AddressStats, error) {
	query := `SELECT COUNT(*)                AS total_addresses,
					 SUM(search_count)       AS total_queries,
					 MAX(last_searched_at)   AS last_search,
					 COUNT(DISTINCT city)    AS unique_cities,
					 COUNT(DISTINCT state)   AS unique_states
				FROM addresses
				WHERE user_id = $1`

	stats := models.AddressStats{}
	err := database.LocalNewsDB.Get(&stats, query, userID)
	return stats, err
}

// Addresses adapts the package helpers to the orchestrator's store interface.
type Addresses struct{}

func (Addresses) Upsert(userID int, data models.AddressData) (models.Address, error) {
	return UpsertAddress(userID, data)
}
