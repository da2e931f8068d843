package signalbot

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func TestDiscordWebhook_Send(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		got = append(got, payload["content"])
	}))
	defer srv.Close()

	if err := NewDiscordWebhook(srv.URL).Send("hello **world**"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if want := []string{"hello **world**"}; !reflect.DeepEqual(got, want) {
		t.Errorf("posted %v, want %v", got, want)
	}
}

func TestDiscordWebhook_SplitsLongMessage(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		got = append(got, payload["content"])
	}))
	defer srv.Close()

	// two lines that cannot share a 2000 character message
	text := strings.Repeat("a", 1500) + "\n" + strings.Repeat("b", 1500)
	if err := NewDiscordWebhook(srv.URL).Send(text); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("posted %d messages, want 2", len(got))
	}
	for i, chunk := range got {
		if len(chunk) > discordMessageLimit {
			t.Errorf("message %d is %d characters, over the limit", i, len(chunk))
		}
	}
}

func TestDiscordWebhook_SendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such webhook", http.StatusNotFound)
	}))
	defer srv.Close()

	if err := NewDiscordWebhook(srv.URL).Send("hello"); err == nil {
		t.Error("404 from the webhook must be an error")
	}
}

func TestSplitMessage(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{name: "empty", text: "", limit: 10, want: nil},
		{name: "fits", text: "ab\ncd", limit: 10, want: []string{"ab\ncd"}},
		{name: "newline boundary", text: "aaa\nbbb", limit: 5, want: []string{"aaa", "bbb"}},
		{name: "hard cut", text: "aaaaaa", limit: 4, want: []string{"aaaa", "aa"}},
		{name: "consecutive newlines", text: "aaa\n\nbbb", limit: 5, want: []string{"aaa", "bbb"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := splitMessage(c.text, c.limit); !reflect.DeepEqual(got, c.want) {
				t.Errorf("splitMessage(%q, %d) = %q, want %q", c.text, c.limit, got, c.want)
			}
		})
	}
}
