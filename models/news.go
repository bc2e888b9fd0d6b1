package models

import "time"

type NewsArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	URL         string    `json:"url"`
	Image       string    `json:"image"`
}

type NewsResult struct {
	Address  string        `json:"address"`
	Location string        `json:"location"`
	Articles []NewsArticle `json:"articles"`
}
