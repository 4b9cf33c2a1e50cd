package dev

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialReload(t *testing.T, s *ReloadServer) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(s.HandleWebSocket))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestReloadServer(t *testing.T) {
	t.Run("no clients initially", func(t *testing.T) {
		s := NewReloadServer()
		if s.ClientCount() != 0 {
			t.Errorf("ClientCount = %d, want 0", s.ClientCount())
		}
		// Broadcasting with no clients is a no-op, not a crash.
		s.NotifyReload()
	})

	t.Run("client receives reload message", func(t *testing.T) {
		s := NewReloadServer()
		conn := dialReload(t, s)

		waitForClients(t, s, 1)
		s.NotifyReload()

		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}

		var msg ReloadMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if msg.Type != ReloadTypeFull {
			t.Errorf("type = %q, want %q", msg.Type, ReloadTypeFull)
		}
	})

	t.Run("css message carries the file name", func(t *testing.T) {
		s := NewReloadServer()
		conn := dialReload(t, s)

		waitForClients(t, s, 1)
		s.NotifyCSS("app.css")

		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}

		var msg ReloadMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if msg.Type != ReloadTypeCSS || msg.File != "app.css" {
			t.Errorf("msg = %+v, want css app.css", msg)
		}
	})

	t.Run("close drops all clients", func(t *testing.T) {
		s := NewReloadServer()
		dialReload(t, s)

		waitForClients(t, s, 1)
		s.Close()
		waitForClients(t, s, 0)
	})
}

func TestClientScriptMentionsEndpoint(t *testing.T) {
	if !strings.Contains(ClientScript, "/_hew/reload") {
		t.Error("client script does not connect to the reload endpoint")
	}
	if !strings.Contains(ClientScript, "location.reload()") {
		t.Error("client script never reloads the page")
	}
}

func waitForClients(t *testing.T, s *ReloadServer, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("ClientCount = %d, want %d", s.ClientCount(), want)
}
