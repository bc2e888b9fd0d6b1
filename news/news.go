package news

import (
	"fmt"
	"time"

	"github.com/RemoteState/localnews-server/models"
)

// Provider supplies local news for a parsed address. Implementations must be
// stateless; the orchestrator calls them once per search.
type Provider interface {
	Fetch(data models.AddressData) (models.NewsResult, error)
}

const (
	sourceLocal    = "Local News"
	sourceState    = "State News"
	sourceBusiness = "Business News"

	imageDowntown  = "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=400&h=200&fit=crop"
	imageCommunity = "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?w=400&h=200&fit=crop"
	imageBusiness  = "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=200&fit=crop"
)

// Generator produces templated articles keyed on the address's city and state.
// It stands in for a real news backend and is also used by the client as the
// offline fallback.
type Generator struct {
	Now func() time.Time
}

func (g Generator) Fetch(data models.AddressData) (models.NewsResult, error) {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	city := "Unknown City"
	if data.City.Valid {
		city = data.City.String
	}
	state := "Unknown State"
	if data.State.Valid {
		state = data.State.String
	}

	published := now()
	articles := []models.NewsArticle{
		{
			Title:       fmt.Sprintf("Local Development Plans Announced for %s", city),
			Description: fmt.Sprintf("City officials have announced new development plans that will transform the downtown area of %s.", city),
			Source:      sourceLocal,
			PublishedAt: published,
			URL:         "#",
			Image:       imageDowntown,
		},
		{
			Title:       fmt.Sprintf("%s Community Center Receives State Grant", city),
			Description: fmt.Sprintf("The %s Community Center has been awarded a significant state grant for facility improvements.", city),
			Source:      sourceState,
			PublishedAt: published.Add(-24 * time.Hour),
			URL:         "#",
			Image:       imageCommunity,
		},
		{
			Title:       fmt.Sprintf("New Business District Opens in %s", city),
			Description: fmt.Sprintf("A new business district featuring local shops and restaurants has opened in the heart of %s.", city),
			Source:      sourceBusiness,
			PublishedAt: published.Add(-48 * time.Hour),
			URL:         "#",
			Image:       imageBusiness,
		},
	}

	return models.NewsResult{
		Address:  data.AddressText,
		Location: fmt.Sprintf("%s, %s", city, state),
		Articles: articles,
	}, nil
}
