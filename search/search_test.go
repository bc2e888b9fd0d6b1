package search

import (
	"errors"
	"testing"
	"time"

	"github.com/RemoteState/localnews-server/models"
	"github.com/RemoteState/localnews-server/news"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAddressStore struct {
	userID int
	data   models.AddressData
	result models.Address
	err    error
	calls  int
}

func (f *fakeAddressStore) Upsert(userID int, data models.AddressData) (models.Address, error) {
	f.calls++
	f.userID = userID
	f.data = data
	return f.result, f.err
}

type fakeHistoryStore struct {
	userID    int
	addressID int
	record    models.SearchRecord
	err       error
	calls     int
}

func (f *fakeHistoryStore) Append(userID, addressID int, record models.SearchRecord) (models.SearchHistory, error) {
	f.calls++
	f.userID = userID
	f.addressID = addressID
	f.record = record
	return models.SearchHistory{ID: 1, UserID: userID, AddressID: addressID}, f.err
}

type fakeProvider struct {
	result models.NewsResult
	err    error
	calls  int
}

func (f *fakeProvider) Fetch(data models.AddressData) (models.NewsResult, error) {
	f.calls++
	return f.result, f.err
}

// steppedClock returns the given instants in sequence, repeating the last one.
func steppedClock(instants ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := instants[i]
		if i < len(instants)-1 {
			i++
		}
		return t
	}
}

func threeArticles() models.NewsResult {
	return models.NewsResult{
		Location: "Springfield, IL",
		Articles: make([]models.NewsArticle, 3),
	}
}

func TestSearchRejectsEmptyAddress(t *testing.T) {
	addresses := &fakeAddressStore{}
	history := &fakeHistoryStore{}
	o := NewOrchestrator(addresses, history, &fakeProvider{})

	for _, raw := range []string{"", "   ", " \t\n "} {
		_, err := o.Search(1, raw)
		assert.ErrorIs(t, err, models.ErrEmptyAddress, "raw=%q", raw)
	}
	assert.Zero(t, addresses.calls)
	assert.Zero(t, history.calls)
}

func TestSearchRecordsHistoryAndReturnsStats(t *testing.T) {
	addresses := &fakeAddressStore{result: models.Address{ID: 42, UserID: 7, SearchCount: 2}}
	history := &fakeHistoryStore{}
	provider := &fakeProvider{result: threeArticles()}

	o := NewOrchestrator(addresses, history, provider)
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	o.now = steppedClock(start, start.Add(1250*time.Millisecond))

	result, err := o.Search(7, "  1600 Pennsylvania Avenue, Washington, DC  ")
	require.NoError(t, err)

	assert.Equal(t, 7, addresses.userID)
	assert.Equal(t, "1600 Pennsylvania Avenue, Washington, DC", addresses.data.AddressText)

	require.Equal(t, 1, history.calls)
	assert.Equal(t, 7, history.userID)
	assert.Equal(t, 42, history.addressID)
	// history keeps the raw query as submitted, not the normalized form
	assert.Equal(t, "  1600 Pennsylvania Avenue, Washington, DC  ", history.record.SearchQuery)
	assert.Equal(t, 3, history.record.ResultsCount)
	assert.Equal(t, 1250, history.record.SearchDurationMs)

	assert.Equal(t, int64(1250), result.Stats.Duration)
	assert.Equal(t, 3, result.Stats.ResultsCount)
	assert.Equal(t, 2, result.Stats.SearchCount)
	assert.Equal(t, 42, result.Address.ID)
}

func TestSearchAbortsWhenUpsertFails(t *testing.T) {
	addresses := &fakeAddressStore{err: errors.New("connection refused")}
	history := &fakeHistoryStore{}
	o := NewOrchestrator(addresses, history, &fakeProvider{result: threeArticles()})

	_, err := o.Search(1, "Springfield, IL")
	require.Error(t, err)
	assert.Zero(t, history.calls)
}

func TestSearchAbortsWhenNewsFails(t *testing.T) {
	addresses := &fakeAddressStore{result: models.Address{ID: 5, SearchCount: 1}}
	history := &fakeHistoryStore{}
	provider := &fakeProvider{err: errors.New("provider down")}
	o := NewOrchestrator(addresses, history, provider)

	_, err := o.Search(1, "Springfield, IL")
	require.Error(t, err)
	// the address write already happened and stays; only history is skipped
	assert.Equal(t, 1, addresses.calls)
	assert.Zero(t, history.calls)
}

func TestSearchSurfacesHistoryFailure(t *testing.T) {
	addresses := &fakeAddressStore{result: models.Address{ID: 5, SearchCount: 1}}
	history := &fakeHistoryStore{err: models.ErrAddressMissing}
	o := NewOrchestrator(addresses, history, &fakeProvider{result: threeArticles()})

	_, err := o.Search(1, "Springfield, IL")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrAddressMissing)
}

func TestSearchUsesRealGenerator(t *testing.T) {
	addresses := &fakeAddressStore{result: models.Address{ID: 9, SearchCount: 1}}
	history := &fakeHistoryStore{}
	o := NewOrchestrator(addresses, history, news.Generator{})

	result, err := o.Search(1, "1600 Pennsylvania Avenue, Washington, DC")
	require.NoError(t, err)
	assert.Len(t, result.News.Articles, 3)
	assert.Equal(t, 1, result.Stats.SearchCount)
}

func TestParseAddressPositionalMapping(t *testing.T) {
	data := ParseAddress("123 Main St, Springfield, IL, 62701")

	// positional, not semantic: the street line lands in the city slot
	assert.Equal(t, "123 Main St, Springfield, IL, 62701", data.AddressText)
	assert.Equal(t, "123 Main St", data.City.String)
	assert.Equal(t, "Springfield", data.State.String)
	assert.Equal(t, "IL", data.Country.String)
	assert.Equal(t, "62701", data.PostalCode.String)
	assert.False(t, data.Latitude.Valid)
	assert.False(t, data.Longitude.Valid)
}

func TestParseAddressDefaultsCountry(t *testing.T) {
	data := ParseAddress("Seattle, WA")

	assert.Equal(t, "Seattle", data.City.String)
	assert.Equal(t, "WA", data.State.String)
	assert.Equal(t, models.DefaultCountry, data.Country.String)
	assert.False(t, data.PostalCode.Valid)
}

func TestParseAddressSingleSegment(t *testing.T) {
	data := ParseAddress("Springfield")

	assert.Equal(t, "Springfield", data.City.String)
	assert.False(t, data.State.Valid)
	assert.Equal(t, models.DefaultCountry, data.Country.String)
}

func TestParseAddressTrimsSegments(t *testing.T) {
	data := ParseAddress("Portland ,  OR ,, 97201")

	assert.Equal(t, "Portland", data.City.String)
	assert.Equal(t, "OR", data.State.String)
	// empty third segment keeps the default country
	assert.Equal(t, models.DefaultCountry, data.Country.String)
	assert.Equal(t, "97201", data.PostalCode.String)
}
