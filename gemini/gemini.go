package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cropwatch/models"
)

const promptSystem = `You are an agricultural extension advisor helping smallholder farmers.
You receive a weekly crop risk assessment: crop type, growth stage, risk score (0-10),
triggered risk categories and recent weather. Respond with 3-5 short, concrete field
actions for the coming week. Plain language, no jargon, one action per line, no
numbering or markdown. Actions must be affordable for a smallholder and specific to
the crop and stage given.`

type part struct {
	Text string `json:"text,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type geminiRequest struct {
	Contents []content `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text,omitempty"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Client calls the Gemini API for week-ahead suggestions. Suggestions are an
// optional enrichment layered on top of the engine's recommendations; the
// service degrades to engine output only when the client is disabled or fails.
type Client struct {
	apiKey string
	model  string
	http   *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		http:   &http.Client{},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// SuggestActions asks the model for field actions based on an assessment.
func (c *Client) SuggestActions(cropType, currentStage string, assessment models.RiskAssessment, weather *models.WeatherSnapshot) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Crop: %s\nStage: %s\nRisk score: %.1f (%s)\n", cropType, currentStage, assessment.OverallRisk, assessment.RiskLevel)
	for _, cat := range models.Categories() {
		if assessment.Factors[cat] > 0 {
			fmt.Fprintf(&sb, "Risk factor %s: %.1f\n", cat, assessment.Factors[cat])
		}
	}
	if weather != nil {
		fmt.Fprintf(&sb, "Weather: %.1f C, %.0f mm rain, %.0f%% humidity\n", weather.AvgTemp, weather.Rainfall, weather.Humidity)
	}

	reqBody := geminiRequest{
		Contents: []content{
			{
				Role:  "user",
				Parts: []part{{Text: promptSystem}, {Text: sb.String()}},
			},
		},
	}

	return c.generateContent(reqBody)
}

func (c *Client) generateContent(body geminiRequest) (string, error) {
	// try v1beta first, then v1
	endpoints := []string{
		fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", c.model, c.apiKey),
		fmt.Sprintf("https://generativelanguage.googleapis.com/v1/models/%s:generateContent?key=%s", c.model, c.apiKey),
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for _, ep := range endpoints {
		req, err := http.NewRequest("POST", ep, bytes.NewBuffer(data))
		if err != nil {
			lastErr = fmt.Errorf("failed to create request: %w", err)
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("failed to send request: %w", err)
			continue
		}
		bodyBytes, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			lastErr = fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(bodyBytes))
			// retry next endpoint if available
			continue
		}
		var gr geminiResponse
		if err := json.Unmarshal(bodyBytes, &gr); err != nil {
			lastErr = fmt.Errorf("failed to parse response: %w", err)
			continue
		}
		if len(gr.Candidates) == 0 {
			lastErr = fmt.Errorf("no candidates in response")
			continue
		}
		// find first text part
		for _, p := range gr.Candidates[0].Content.Parts {
			if p.Text != "" {
				return p.Text, nil
			}
		}
		lastErr = fmt.Errorf("no text part in response")
	}
	return "", lastErr
}
