package serp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"golang.org/x/time/rate"
	"io"
	"net/http"

	"github.com/eduforge/intern-matcher/internal/domain/models"
)

type searchResponse struct {
	Jobs []jobResult `json:"jobs"`
}

type jobResult struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	URL        string `json:"url"`
	Source     string `json:"source"`
	Snippet    string `json:"snippet"`
	PostedDate string `json:"posted_date"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the web-search provider's job search endpoint.
type Client struct {
	httpClient  HTTPClient
	baseURL     string
	apiKey      string
	rateLimiter *rate.Limiter
}

func NewClient(baseURL string, apiKey string) *Client {
	return &Client{httpClient: &http.Client{}, baseURL: baseURL, apiKey: apiKey}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) Search(ctx context.Context, query string, limit int) ([]models.RawOpportunity, error) {

	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %v", limit)
	}

	payload, err := json.Marshal(map[string]any{"q": query, "num": limit})
	if err != nil {
		return nil, err
	}

	body, err := c.sendRequest(ctx, "POST", c.baseURL+"/jobs", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var response searchResponse
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&response); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}

	results := make([]models.RawOpportunity, 0, len(response.Jobs))
	for _, job := range response.Jobs {
		results = append(results, models.RawOpportunity{
			Title:      job.Title,
			Company:    job.Company,
			Location:   job.Location,
			URL:        job.URL,
			Source:     job.Source,
			Snippet:    job.Snippet,
			PostedDate: job.PostedDate,
		})
	}

	return results, nil
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, body io.Reader) ([]byte, error) {

	if c.rateLimiter != nil {
		err := c.rateLimiter.Wait(ctx)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	return body, nil
}
