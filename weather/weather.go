package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cropwatch/models"
)

// Client fetches current conditions from an Open-Meteo compatible endpoint.
// Lookups are best-effort: the caller treats any error as "no weather
// available" and scores without the weather multipliers.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a weather client. apiKey may be empty for providers that
// don't require one.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type currentConditions struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		Precipitation float64 `json:"precipitation"`
	} `json:"current"`
}

// Current returns a weather snapshot for the given coordinates.
func (c *Client) Current(ctx context.Context, latitude, longitude float64) (*models.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', 4, 64))
	params.Set("current", "temperature_2m,relative_humidity_2m,precipitation")
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("weather API error (status %d): %s", resp.StatusCode, string(body))
	}

	var cc currentConditions
	if err := json.Unmarshal(body, &cc); err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}

	return &models.WeatherSnapshot{
		AvgTemp:  cc.Current.Temperature,
		Rainfall: cc.Current.Precipitation,
		Humidity: cc.Current.Humidity,
	}, nil
}
