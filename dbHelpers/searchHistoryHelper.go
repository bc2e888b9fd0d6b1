package dbHelpers

import (
	"errors"

	"github.com/RemoteState/localnews-server/database"
	"github.com/RemoteState/localnews-server/models"
	"github.com/lib/pq"
)

const historyColumns = `id, user_id, address_id, search_query, results_count, search_duration_ms, created_at`

//InsertSearchHistory appends one immutable history row for a completed search.
//Returns models.ErrAddressMissing when addressID references no address row.
func InsertSearchHistory(userID, addressID int, record models.SearchRecord) (models.SearchHistory, error) {
	query := `
		INSERT INTO search_history (user_id, address_id, search_query, results_count, search_duration_ms)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + historyColumns

	entry := models.SearchHistory{}
	err := database.LocalNewsDB.Get(&entry, query, userID, addressID, record.SearchQuery, record.ResultsCount, record.SearchDurationMs)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return entry, models.ErrAddressMissing
		}
	}
	return entry, err
}

//SelectHistoryByUser returns the user's searches newest first, each enriched
//with the searched address's text, city and state
func SelectHistoryByUser(userID, limit int) ([]models.SearchHistoryEntry, error) {
	query := `SELECT sh.id, sh.user_id, sh.address_id, sh.search_query, sh.results_count, sh.search_duration_ms, sh.created_at,
					 a.address_text, a.city, a.state
				FROM search_history sh
				JOIN addresses a ON sh.address_id = a.id
				WHERE sh.user_id = $1
				ORDER BY sh.created_at DESC
				LIMIT $2`

	history := make([]models.SearchHistoryEntry, 0)
	err := database.LocalNewsDB.Select(&history, query, userID, limit)
	return history, err
}

//SelectHistoryByAddress returns the searches recorded against one address, newest first
func SelectHistoryByAddress(addressID, limit int) ([]models.SearchHistory, error) {
	query := `SELECT ` + historyColumns + `
				FROM search_history
				WHERE address_id = $1
				ORDER BY created_at DESC
				LIMIT $2`

	history := make([]models.SearchHistory, 0)
	err := database.LocalNewsDB.Select(&history, query, addressID, limit)
	return history, err
}

//HistoryStats aggregates the user's search history
func HistoryStats(userID int) (models.HistoryStats, error) {
	query := `SELECT COUNT(*)                 AS total_searches,
					 AVG(results_count)       AS avg_results,
					 AVG(search_duration_ms)  AS avg_duration,
					 MIN(created_at)          AS first_search,
					 MAX(created_at)          AS last_search
				FROM search_history
				WHERE user_id = $1`

	stats := models.HistoryStats{}
	err := database.LocalNewsDB.Get(&stats, query, userID)
	return stats, err
}

//SelectRecentSearches returns the user's join-enriched searches from the last
//withinDays days, newest first
func SelectRecentSearches(userID, withinDays int) ([]models.SearchHistoryEntry, error) {
	query := `SELECT sh.id, sh.user_id, sh.address_id, sh.search_query, sh.results_count, sh.search_duration_ms, sh.created_at,
					 a.address_text, a.city, a.state
				FROM search_history sh
				JOIN addresses a ON sh.address_id = a.id
				WHERE sh.user_id = $1
				  AND sh.created_at >= now() - ($2 || ' day')::INTERVAL
				ORDER BY sh.created_at DESC`

	history := make([]models.SearchHistoryEntry, 0)
	err := database.LocalNewsDB.Select(&history, query, userID, withinDays)
	return history, err
}

//PurgeHistoryOlderThan bulk-deletes history rows older than the given number
//of days and returns how many were removed
func PurgeHistoryOlderThan(days int) (int64, error) {
	query := `DELETE FROM search_history WHERE created_at < now() - ($1 || ' day')::INTERVAL`

	res, err := database.LocalNewsDB.Exec(query, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// History adapts the package helpers to the orchestrator's store interface.
type History struct{}

func (History) Append(userID, addressID int, record models.SearchRecord) (models.SearchHistory, error) {
	return InsertSearchHistory(userID, addressID, record)
}
