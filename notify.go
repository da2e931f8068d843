package signalbot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Notifier delivers a text report to an external channel. Delivery is best
// effort: callers log a failed Send and move on, and a send must never be
// attempted before the ledger is persisted.
type Notifier interface {
	Send(text string) error
}

// discordMessageLimit is Discord's hard cap on a single message's content.
const discordMessageLimit = 2000

// DiscordWebhook posts messages to a Discord webhook URL. Discord renders
// markdown, so reports are posted verbatim.
type DiscordWebhook struct {
	url    string
	client *http.Client
}

// NewDiscordWebhook creates a notifier for the given webhook URL.
func NewDiscordWebhook(url string) *DiscordWebhook {
	return &DiscordWebhook{url: url, client: new(http.Client)}
}

// Send posts the text, split on line boundaries into messages under
// Discord's 2000 character limit. The first failed chunk aborts the rest.
func (d *DiscordWebhook) Send(text string) error {
	for _, chunk := range splitMessage(text, discordMessageLimit) {
		body, err := json.Marshal(map[string]string{"content": chunk})
		if err != nil {
			return err
		}
		resp, err := d.client.Post(d.url, "application/json", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("discord webhook: %w", err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode >= 300 {
			return fmt.Errorf("discord webhook: %v", resp.Status)
		}
	}
	return nil
}

// splitMessage cuts text into chunks of at most limit bytes, preferring
// newline boundaries. A single line longer than the limit is cut hard.
func splitMessage(text string, limit int) []string {
	var chunks []string
	for len(text) > limit {
		cut := limit
		if i := lastNewline(text[:limit]); i > 0 {
			cut = i
		}
		chunks = append(chunks, strings.TrimRight(text[:cut], "\n"))
		for len(text) > cut && text[cut] == '\n' {
			cut++
		}
		text = text[cut:]
	}
	if len(text) > 0 {
		chunks = append(chunks, text)
	}
	return chunks
}

func lastNewline(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '\n' {
			return i
		}
	}
	return -1
}
