// Package armory fetches account and character statistics from the D4Armory
// game-statistics API.
package armory

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the armory endpoint serving account documents.
const DefaultBaseURL = "https://d4armory.io/api/armory"

// StatusError is returned when the armory answers with a non-OK status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("armory response not successful: %d %s", e.Code, http.StatusText(e.Code))
}

// Character is one character on an armory account
type Character struct {
	Name       string    `json:"name"`
	ID         string    `json:"id"`
	Class      string    `json:"class"`
	Level      uint64    `json:"level"`
	LastUpdate time.Time `json:"lastUpdate"`
	Hardcore   bool      `json:"hardcore"`
	Seasonal   bool      `json:"seasonal"`
}

// Account is the armory document for one account
type Account struct {
	AccountID         uint64      `json:"-"`
	DungeonsCompleted uint64      `json:"dungeons_completed"`
	PlayersKilled     uint64      `json:"players_killed"`
	ClanID            string      `json:"clan_id"`
	ClanTag           string      `json:"clan_tag"`
	Twitch            string      `json:"twitch"`
	Characters        []Character `json:"characters"`
}

// Client talks to the armory API
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client against the public armory with a 30-second
// request timeout.
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Account fetches and decodes the armory document for accountID.
func (c *Client) Account(accountID uint64) (*Account, error) {
	var account Account
	if err := c.getJSON(fmt.Sprintf("%s/%d", c.BaseURL, accountID), &account); err != nil {
		return nil, err
	}
	account.AccountID = accountID
	return &account, nil
}

func (c *Client) getJSON(url string, v interface{}) error {
	resp, err := c.HTTP.Get(url)
	if err != nil {
		return fmt.Errorf("armory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode armory response: %w", err)
	}

	return nil
}
