package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/mnallaretnam/weather-dashboard/internal/weather"
)

// ErrNotFound is the single failure mode of the geocoder. Transport errors,
// bad statuses, and parse failures are folded into it as well: a place that
// cannot be resolved is "not found" regardless of why. Details are logged
// for diagnostics only.
var ErrNotFound = errors.New("place not found")

const defaultBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

// Client resolves free-text place names via the Open-Meteo geocoding API.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(client *http.Client) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		client:  client,
	}
}

// Resolve looks up the single best match for query. A blank query
// short-circuits to ErrNotFound without an outbound call. No retry.
func (c *Client) Resolve(ctx context.Context, query string) (weather.Coordinates, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return weather.Coordinates{}, ErrNotFound
	}

	values := url.Values{}
	values.Set("name", query)
	values.Set("count", "1")
	values.Set("language", "en")
	values.Set("format", "json")

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Printf("geocode: building request for %q: %v", query, err)
		return weather.Coordinates{}, ErrNotFound
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("geocode: request failed for %q: %v", query, err)
		return weather.Coordinates{}, ErrNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("geocode: unexpected status %d for %q", resp.StatusCode, query)
		return weather.Coordinates{}, ErrNotFound
	}

	var payload struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Name      string  `json:"name"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("geocode: decoding response for %q: %v", query, err)
		return weather.Coordinates{}, ErrNotFound
	}

	if len(payload.Results) == 0 {
		return weather.Coordinates{}, ErrNotFound
	}

	first := payload.Results[0]
	return weather.Coordinates{
		Latitude:    first.Latitude,
		Longitude:   first.Longitude,
		DisplayName: first.Name,
	}, nil
}
