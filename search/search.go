package search

import (
	"strings"
	"time"

	"github.com/RemoteState/localnews-server/models"
	"github.com/RemoteState/localnews-server/news"
	"github.com/pkg/errors"
	"github.com/volatiletech/null"
)

// AddressStore persists searched addresses with upsert-by-text semantics.
type AddressStore interface {
	Upsert(userID int, data models.AddressData) (models.Address, error)
}

// HistoryStore appends to the search history log.
type HistoryStore interface {
	Append(userID, addressID int, record models.SearchRecord) (models.SearchHistory, error)
}

// Orchestrator runs one end-to-end search-by-address request: validate, parse,
// upsert the address, fetch news, record history.
type Orchestrator struct {
	addresses AddressStore
	history   HistoryStore
	provider  news.Provider
	now       func() time.Time
}

func NewOrchestrator(addresses AddressStore, history HistoryStore, provider news.Provider) *Orchestrator {
	return &Orchestrator{
		addresses: addresses,
		history:   history,
		provider:  provider,
		now:       time.Now,
	}
}

//Search coordinates a single search for the given caller. The raw text is
//stored verbatim in the history log; the parsed components go to the address
//upsert. A history append failure aborts the request without undoing the
//address write.
func (o *Orchestrator) Search(userID int, rawAddress string) (models.SearchResult, error) {
	trimmed := strings.TrimSpace(rawAddress)
	if trimmed == "" {
		return models.SearchResult{}, models.ErrEmptyAddress
	}

	started := o.now()
	data := ParseAddress(trimmed)

	address, err := o.addresses.Upsert(userID, data)
	if err != nil {
		return models.SearchResult{}, errors.Wrap(err, "failed to upsert address")
	}

	result, err := o.provider.Fetch(data)
	if err != nil {
		return models.SearchResult{}, errors.Wrap(err, "failed to fetch news")
	}
	duration := o.now().Sub(started).Milliseconds()

	_, err = o.history.Append(userID, address.ID, models.SearchRecord{
		SearchQuery:      rawAddress,
		ResultsCount:     len(result.Articles),
		SearchDurationMs: int(duration),
	})
	if err != nil {
		return models.SearchResult{}, errors.Wrap(err, "failed to record search history")
	}

	return models.SearchResult{
		Address: address,
		News:    result,
		Stats: models.SearchStats{
			Duration:     duration,
			ResultsCount: len(result.Articles),
			SearchCount:  address.SearchCount,
		},
	}, nil
}

//ParseAddress splits the text on commas and maps the segments by position:
//0 city, 1 state, 2 country (defaults to USA), 3 postal code. The mapping is
//positional, not semantic, so a leading street line lands in the city slot;
//kept as-is from the original behavior. Coordinates are never set here, that
//is a geocoding collaborator's job.
func ParseAddress(addressText string) models.AddressData {
	parts := strings.Split(addressText, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	data := models.AddressData{
		AddressText: addressText,
		Country:     null.StringFrom(models.DefaultCountry),
	}
	if len(parts) > 0 && parts[0] != "" {
		data.City = null.StringFrom(parts[0])
	}
	if len(parts) > 1 && parts[1] != "" {
		data.State = null.StringFrom(parts[1])
	}
	if len(parts) > 2 && parts[2] != "" {
		data.Country = null.StringFrom(parts[2])
	}
	if len(parts) > 3 && parts[3] != "" {
		data.PostalCode = null.StringFrom(parts[3])
	}
	return data
}
