// Package client is the presentation layer's interface to the API: a thin
// HTTP client with a liveness probe and a local stand-in that serves the same
// templated-article shape when the backend is unreachable.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/RemoteState/localnews-server/models"
	"github.com/RemoteState/localnews-server/news"
	"github.com/RemoteState/localnews-server/search"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Connectivity string

const (
	StatusChecking     Connectivity = "checking"
	StatusConnected    Connectivity = "connected"
	StatusDisconnected Connectivity = "disconnected"
)

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL  string
	http     *http.Client
	fallback news.Generator

	mu     sync.RWMutex
	status Connectivity
}

// New builds a client for the given base URL (for example http://localhost:5000).
// The connectivity state stays "checking" until the first Probe.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		status:  StatusChecking,
	}
}

func (c *Client) Status() Connectivity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

func (c *Client) setStatus(status Connectivity) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}

//Probe hits the health endpoint and records whether the backend is reachable
func (c *Client) Probe() Connectivity {
	resp, err := c.http.Get(c.baseURL + "/api/health")
	if err != nil {
		logrus.Infof("backend not available at %s, falling back to local results", c.baseURL)
		c.setStatus(StatusDisconnected)
		return StatusDisconnected
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.setStatus(StatusDisconnected)
		return StatusDisconnected
	}
	c.setStatus(StatusConnected)
	return StatusConnected
}

//Search submits the address to the backend. When the backend is marked
//disconnected, or the call itself fails at the transport level, the local
//generator serves the result instead so callers always get the same shape;
//HTTP-level errors (400, 500) are surfaced, not masked.
func (c *Client) Search(userID int, address string) (models.SearchResult, error) {
	if strings.TrimSpace(address) == "" {
		return models.SearchResult{}, models.ErrEmptyAddress
	}

	if c.Status() == StatusDisconnected {
		return c.localSearch(address), nil
	}

	payload, err := json.Marshal(map[string]interface{}{"address": address, "userId": userID})
	if err != nil {
		return models.SearchResult{}, err
	}

	resp, err := c.http.Post(c.baseURL+"/api/addresses/search", "application/json", bytes.NewReader(payload))
	if err != nil {
		c.setStatus(StatusDisconnected)
		return c.localSearch(address), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.SearchResult{}, fmt.Errorf("search failed with status %d", resp.StatusCode)
	}

	response := models.SearchResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return models.SearchResult{}, errors.Wrap(err, "failed to decode search response")
	}
	return models.SearchResult{
		Address: response.Address,
		News:    response.News,
		Stats:   response.SearchStats,
	}, nil
}

// localSearch reproduces the backend's result shape without contacting it.
// Nothing is persisted, so the address and stats carry no server-assigned data.
func (c *Client) localSearch(address string) models.SearchResult {
	data := search.ParseAddress(strings.TrimSpace(address))
	result, _ := c.fallback.Fetch(data)
	return models.SearchResult{
		News: result,
		Stats: models.SearchStats{
			ResultsCount: len(result.Articles),
		},
	}
}

//Addresses fetches the user's stored addresses
func (c *Client) Addresses(userID int) ([]models.Address, error) {
	response := models.AddressesResponse{}
	if err := c.get(fmt.Sprintf("/api/addresses?userId=%d", userID), &response); err != nil {
		return nil, err
	}
	return response.Addresses, nil
}

//History fetches the user's search history
func (c *Client) History(userID, limit int) ([]models.SearchHistoryEntry, error) {
	response := models.HistoryResponse{}
	if err := c.get(fmt.Sprintf("/api/addresses/history?userId=%d&limit=%d", userID, limit), &response); err != nil {
		return nil, err
	}
	return response.History, nil
}

//Stats fetches the user's combined search statistics
func (c *Client) Stats(userID int) (models.CombinedStats, error) {
	response := models.StatsResponse{}
	if err := c.get(fmt.Sprintf("/api/addresses/stats?userId=%d", userID), &response); err != nil {
		return models.CombinedStats{}, err
	}
	return response.Stats, nil
}

func (c *Client) get(path string, out interface{}) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		c.setStatus(StatusDisconnected)
		return errors.Wrap(err, "backend unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
