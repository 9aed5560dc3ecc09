package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Riot enforces 100 requests per 2 minutes on personal keys, which works out
// to one request per 1.2s. 1.21s adds a small safety margin.
const requestInterval = 1210 * time.Millisecond

// Client is a rate-limited Riot API client. League and summoner lookups go to
// the platform host (e.g. eun1), match-v5 lookups to the regional routing
// host (e.g. europe).
type Client struct {
	apiKey     string
	platform   string
	region     string
	httpClient *http.Client
	log        *zap.SugaredLogger

	// Fixed-delay throttle shared by all callers of this credential.
	mu       sync.Mutex
	lastCall time.Time
}

// NewClient creates a Riot API client for the given credential and routing.
func NewClient(apiKey, platform, region string, log *zap.SugaredLogger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("riot API key is empty")
	}
	return &Client{
		apiKey:   apiKey,
		platform: platform,
		region:   region,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}, nil
}

func (c *Client) platformURL(path string) string {
	return fmt.Sprintf("https://%s.api.riotgames.com%s", c.platform, path)
}

func (c *Client) regionURL(path string) string {
	return fmt.Sprintf("https://%s.api.riotgames.com%s", c.region, path)
}

// waitTurn blocks until at least requestInterval has passed since the last
// request on this credential.
func (c *Client) waitTurn(ctx context.Context) error {
	c.mu.Lock()
	wait := requestInterval - time.Since(c.lastCall)
	if wait > 0 {
		c.mu.Unlock()
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
		c.mu.Lock()
	}
	c.lastCall = time.Now()
	c.mu.Unlock()
	return nil
}

// doRequest makes a rate-limited GET request and decodes the JSON response.
func (c *Client) doRequest(ctx context.Context, url string, result interface{}) error {
	if err := c.waitTurn(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(result)
	case http.StatusTooManyRequests:
		waitTime := 10
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if n, err := strconv.Atoi(retryAfter); err == nil {
				waitTime = n
			}
		}
		c.log.Warnw("Rate limited by Riot API", "wait_seconds", waitTime)
		select {
		case <-time.After(time.Duration(waitTime) * time.Second):
		case <-ctx.Done():
			return ctx.Err()
		}
		return c.doRequest(ctx, url, result)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("API returned status %d - check if your API key is valid", resp.StatusCode)
	case http.StatusNotFound:
		return fmt.Errorf("API returned 404 Not Found - resource may not exist")
	default:
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}
}

// GetLeagueEntries fetches one page of ranked entries for a tier. Division is
// always I: the apex tiers (MASTER+) only have a single division.
func (c *Client) GetLeagueEntries(ctx context.Context, tier string, page int) ([]LeagueEntry, error) {
	u := c.platformURL(fmt.Sprintf("/lol/league-exp/v4/entries/RANKED_SOLO_5x5/%s/I?page=%d",
		url.PathEscape(tier), page))

	var entries []LeagueEntry
	err := c.doRequest(ctx, u, &entries)
	return entries, err
}

// GetSummoner fetches a summoner by encrypted summoner id, primarily for the
// PUUID needed by match-v5.
func (c *Client) GetSummoner(ctx context.Context, summonerID string) (*SummonerResponse, error) {
	u := c.platformURL(fmt.Sprintf("/lol/summoner/v4/summoners/%s", url.PathEscape(summonerID)))

	var summoner SummonerResponse
	err := c.doRequest(ctx, u, &summoner)
	return &summoner, err
}

// GetMatchIDs fetches ranked solo-queue match IDs for a player.
func (c *Client) GetMatchIDs(ctx context.Context, puuid string, count int) ([]string, error) {
	u := c.regionURL(fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?queue=420&type=ranked&start=0&count=%d",
		url.PathEscape(puuid), count))

	var matchIDs []string
	err := c.doRequest(ctx, u, &matchIDs)
	return matchIDs, err
}

// GetTimeline fetches the per-minute timeline for a match.
func (c *Client) GetTimeline(ctx context.Context, matchID string) (*TimelineResponse, error) {
	u := c.regionURL(fmt.Sprintf("/lol/match/v5/matches/%s/timeline", url.PathEscape(matchID)))

	var timeline TimelineResponse
	err := c.doRequest(ctx, u, &timeline)
	return &timeline, err
}
