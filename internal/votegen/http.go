package votegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(url string) (*http.Response, error) {
	return c.client.Get(url)
}

// Post performs a POST request with JSON body.
func (c *HTTPClient) Post(url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()
	return io.ReadAll(resp.Body)
}

// fetchConcerts retrieves the concert catalog from the service.
func fetchConcerts(ctx context.Context, config *Config) ([]Concert, error) {
	client := newHTTPClient(config.Timeout)
	resp, err := client.Get(config.BaseURL + "/api/concerts")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch concerts: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read concerts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("concerts request failed with status: %d", resp.StatusCode)
	}
	var concerts []Concert
	if err := json.Unmarshal(body, &concerts); err != nil {
		return nil, fmt.Errorf("failed to parse concerts response: %w", err)
	}
	if len(concerts) == 0 {
		return nil, fmt.Errorf("service has no concerts to vote on")
	}
	return concerts, nil
}

// fetchRankings retrieves the current leaderboard from the service.
func fetchRankings(ctx context.Context, config *Config, stats *Stats) ([]RankedEntry, error) {
	client := newHTTPClient(config.Timeout)
	url := fmt.Sprintf("%s/api/rankings?limit=%d", config.BaseURL, config.TopN)
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rankings: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read rankings response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rankings request failed with status: %d", resp.StatusCode)
	}
	var entries []RankedEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse rankings response: %w", err)
	}
	stats.RankedEntries = len(entries)
	return entries, nil
}

// submitVotes submits votes concurrently using a worker pool.
func submitVotes(ctx context.Context, config *Config, votes []Vote, stats *Stats) error {
	log.Printf("📤 Submitting %d votes with %d workers...", len(votes), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/api/vote"

	var (
		successful int64
		failed     int64
		submitted  int64
	)

	var lastReport time.Time
	reportInterval := 1 * time.Second

	voteChan := make(chan Vote, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for vote := range voteChan {
				select {
				case <-ctx.Done():
					return
				default:
					atomic.AddInt64(&submitted, 1)
					if submitSingleVote(client, url, vote) {
						atomic.AddInt64(&successful, 1)
					} else {
						atomic.AddInt64(&failed, 1)
					}

					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&submitted)
						succ := atomic.LoadInt64(&successful)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("📊 Progress: %d/%d submitted (success: %d, failed: %d)",
								total, len(votes), succ, fail)
						} else {
							fmt.Printf("\r📤 Submitted: %d/%d (success: %d, failed: %d)",
								total, len(votes), succ, fail)
						}
					}
				}
			}
		}()
	}

	go func() {
		defer close(voteChan)
		for _, vote := range votes {
			select {
			case <-ctx.Done():
				return
			case voteChan <- vote:
			}
		}
	}()

	wg.Wait()

	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	stats.VotesSubmitted = int(atomic.LoadInt64(&submitted))
	stats.VotesSuccessful = int(atomic.LoadInt64(&successful))
	stats.VotesFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Vote submission completed:
   Successful: %d
   Failed: %d
`, stats.VotesSuccessful, stats.VotesFailed)

	return nil
}

// submitSingleVote submits a single vote and reports success.
func submitSingleVote(client *HTTPClient, url string, vote Vote) bool {
	resp, err := client.Post(url, vote)
	if err != nil {
		return false
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return false
	}
	if resp.StatusCode != http.StatusOK {
		return false
	}
	var ack AckResponse
	if err := json.Unmarshal(body, &ack); err == nil && ack.Status == "recorded" {
		return true
	}
	// Assume success for 200 even if parsing fails
	return true
}
