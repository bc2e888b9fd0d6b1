package news

import (
	"testing"
	"time"

	"github.com/RemoteState/localnews-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null"
)

func TestGeneratorProducesThreeArticles(t *testing.T) {
	fixed := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	g := Generator{Now: func() time.Time { return fixed }}

	result, err := g.Fetch(models.AddressData{
		AddressText: "Springfield, IL",
		City:        null.StringFrom("Springfield"),
		State:       null.StringFrom("IL"),
	})
	require.NoError(t, err)

	require.Len(t, result.Articles, 3)
	assert.Equal(t, "Springfield, IL", result.Location)
	assert.Equal(t, "Springfield, IL", result.Address)

	assert.Equal(t, "Local Development Plans Announced for Springfield", result.Articles[0].Title)
	assert.Equal(t, "Springfield Community Center Receives State Grant", result.Articles[1].Title)
	assert.Equal(t, "New Business District Opens in Springfield", result.Articles[2].Title)

	assert.Equal(t, "Local News", result.Articles[0].Source)
	assert.Equal(t, "State News", result.Articles[1].Source)
	assert.Equal(t, "Business News", result.Articles[2].Source)

	assert.Equal(t, fixed, result.Articles[0].PublishedAt)
	assert.Equal(t, fixed.Add(-24*time.Hour), result.Articles[1].PublishedAt)
	assert.Equal(t, fixed.Add(-48*time.Hour), result.Articles[2].PublishedAt)

	for _, article := range result.Articles {
		assert.Equal(t, "#", article.URL)
		assert.NotEmpty(t, article.Image)
		assert.NotEmpty(t, article.Description)
	}
}

func TestGeneratorFallsBackToUnknownLocation(t *testing.T) {
	g := Generator{}

	result, err := g.Fetch(models.AddressData{AddressText: "somewhere"})
	require.NoError(t, err)

	assert.Equal(t, "Unknown City, Unknown State", result.Location)
	assert.Equal(t, "Local Development Plans Announced for Unknown City", result.Articles[0].Title)
}

func TestGeneratorIsDeterministicForSameClock(t *testing.T) {
	fixed := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	g := Generator{Now: func() time.Time { return fixed }}
	data := models.AddressData{City: null.StringFrom("Boise"), State: null.StringFrom("ID")}

	first, err := g.Fetch(data)
	require.NoError(t, err)
	second, err := g.Fetch(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
