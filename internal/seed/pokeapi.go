// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package seed implements the one-shot catalog reload from the external
// paginated catalog API (PokeAPI).
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/taibuivan/pokedex/internal/platform/constants"
)

// Summary is one record of the external listing: a name plus a URL whose
// second-to-last path segment encodes the sequence number.
type Summary struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// pageResponse mirrors the external endpoint's JSON body.
type pageResponse struct {
	Results []Summary `json:"results"`
}

// Client fetches summary pages from the external catalog API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient builds a client for the given listing endpoint
// (e.g. "https://pokeapi.co/api/v2/pokemon").
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: constants.SeedFetchTimeout},
		baseURL:    baseURL,
	}
}

// FetchPage retrieves a single page of up to limit summary records.
func (client *Client) FetchPage(ctx context.Context, limit int) ([]Summary, error) {
	url := fmt.Sprintf("%s?limit=%d", client.baseURL, limit)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("seed: failed to build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("seed: request to %s failed: %w", client.baseURL, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed: %s returned status %d", client.baseURL, response.StatusCode)
	}

	var page pageResponse
	if err := json.NewDecoder(response.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("seed: failed to decode response body: %w", err)
	}

	return page.Results, nil
}

// SequenceNumber extracts the sequence number encoded in a summary URL as
// its second-to-last path segment (".../pokemon/132/" -> 132).
func (summary Summary) SequenceNumber() (int, error) {
	segments := strings.Split(summary.URL, "/")
	if len(segments) < 2 {
		return 0, fmt.Errorf("seed: url %q has no sequence segment", summary.URL)
	}

	no, err := strconv.Atoi(segments[len(segments)-2])
	if err != nil {
		return 0, fmt.Errorf("seed: url %q has a non-numeric sequence segment: %w", summary.URL, err)
	}

	return no, nil
}
