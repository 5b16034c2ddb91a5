package fantasyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/providers"
	"fantasy-squad-service/internal/transfers"
)

// Config controls how the client reaches the game backend.
type Config struct {
	BaseURL      string
	ServiceToken string
	UserAgent    string
	HTTPClient   *http.Client
}

// Client talks to the game backend's REST API and maps its payloads into
// canonical domain shapes. Pool fetches authenticate with the service
// token; per-user calls forward the caller's bearer token.
type Client struct {
	baseURL      string
	serviceToken string
	userAgent    string
	httpClient   httpDoer
}

var _ providers.DataProvider = (*Client)(nil)

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:      normalizeBaseURL(cfg.BaseURL),
		serviceToken: cfg.ServiceToken,
		userAgent:    resolveUserAgent(cfg.UserAgent),
		httpClient:   resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchPlayers retrieves the full player pool.
func (c *Client) FetchPlayers(ctx context.Context) ([]domain.Player, error) {
	var payload playersResponse
	if err := c.get(ctx, "/players", c.serviceToken, &payload); err != nil {
		return nil, err
	}
	players := make([]domain.Player, 0, len(payload.Players))
	for _, p := range payload.Players {
		players = append(players, mapPlayer(p))
	}
	return players, nil
}

// FetchGameweek retrieves the current gameweek.
func (c *Client) FetchGameweek(ctx context.Context) (domain.Gameweek, error) {
	var payload gameweekResponse
	if err := c.get(ctx, "/gameweeks/current", c.serviceToken, &payload); err != nil {
		return domain.Gameweek{}, err
	}
	return domain.Gameweek{ID: payload.ID, Name: payload.Name, Finished: payload.Finished}, nil
}

// FetchSquad retrieves the caller's confirmed squad snapshot.
func (c *Client) FetchSquad(ctx context.Context, token string) (domain.SquadSnapshot, error) {
	var payload squadResponse
	if err := c.get(ctx, "/team", token, &payload); err != nil {
		return domain.SquadSnapshot{}, err
	}
	return mapSquad(payload), nil
}

// FetchSquadPoints retrieves a completed gameweek's scoring view.
func (c *Client) FetchSquadPoints(ctx context.Context, token string, gameweek int) (domain.SquadPoints, error) {
	var payload squadPointsResponse
	path := fmt.Sprintf("/gameweeks/%d/stats", gameweek)
	if err := c.get(ctx, path, token, &payload); err != nil {
		return domain.SquadPoints{}, err
	}
	if payload.Gameweek == 0 {
		payload.Gameweek = gameweek
	}
	return mapSquadPoints(payload), nil
}

// FetchPlayerDetails retrieves the display-only player detail payload,
// passed through opaquely.
func (c *Client) FetchPlayerDetails(ctx context.Context, playerID int) (json.RawMessage, error) {
	req, err := c.buildRequest(ctx, http.MethodGet, fmt.Sprintf("/players/%d/details", playerID), c.serviceToken, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}

// SubmitTeam posts an initial team submission.
func (c *Client) SubmitTeam(ctx context.Context, token string, submission domain.SquadSnapshot) error {
	body := submitTeamRequest{
		TeamName: submission.TeamName,
		Players:  make([]submittedPlayer, 0, len(submission.Players)),
	}
	for _, p := range submission.Players {
		body.Players = append(body.Players, submittedPlayer{
			ID:            p.ID,
			Position:      string(p.Position),
			IsCaptain:     p.IsCaptain,
			IsViceCaptain: p.IsViceCaptain,
			IsBenched:     p.IsBenched,
		})
	}
	return c.post(ctx, "/teams", token, body)
}

// ConfirmTransfers posts the ordinally paired transfer list.
func (c *Client) ConfirmTransfers(ctx context.Context, token string, pairs []transfers.Pair) error {
	return c.post(ctx, "/transfers/confirm", token, confirmTransfersRequest{Transfers: pairs})
}

// FetchChipStatus retrieves the caller's chip state.
func (c *Client) FetchChipStatus(ctx context.Context, token string) (domain.ChipStatus, error) {
	var payload chipStatusResponse
	if err := c.get(ctx, "/chips/status", token, &payload); err != nil {
		return domain.ChipStatus{}, err
	}
	return mapChipStatus(payload), nil
}

// ActivateChip activates a chip. Irreversible once the backend confirms.
func (c *Client) ActivateChip(ctx context.Context, token string, chip domain.ChipName) error {
	return c.post(ctx, "/chips/activate", token, activateChipRequest{Chip: string(chip)})
}

func (c *Client) get(ctx context.Context, path, token string, payload any) error {
	req, err := c.buildRequest(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.errorFromResponse(resp)
	}
	return json.NewDecoder(resp.Body).Decode(payload)
}

func (c *Client) post(ctx context.Context, path, token string, body any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := c.buildRequest(ctx, http.MethodPost, path, token, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) buildRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp),
		}
	}

	message := strings.TrimSpace(string(raw))
	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Error != "" {
			message = parsed.Error
		} else if parsed.Message != "" {
			message = parsed.Message
		}
	}
	return &providers.UpstreamError{StatusCode: resp.StatusCode, Message: message}
}
