package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/logger"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/models"
)

// dialTestHub starts a hub behind a test server and connects one client.
func dialTestHub(t *testing.T) (*Hub, *websocket.Conn) {
	t.Helper()

	hub := New(logger.New())
	hub.Start()

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Registration races the first broadcast; give the hub a moment.
	time.Sleep(50 * time.Millisecond)
	return hub, conn
}

func readMessage(t *testing.T, conn *websocket.Conn) models.WSMessage {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg models.WSMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("failed to read broadcast: %v", err)
	}
	return msg
}

func TestBroadcastEventOpened(t *testing.T) {
	hub, conn := dialTestHub(t)

	hub.BroadcastEventOpened("spring-classic")

	msg := readMessage(t, conn)
	if msg.Type != "event_opened" {
		t.Errorf("message type = %q, want event_opened", msg.Type)
	}
	payload, ok := msg.Payload.(map[string]interface{})
	if !ok || payload["name"] != "spring-classic" {
		t.Errorf("payload = %v, want event name", msg.Payload)
	}
}

func TestBroadcastClassConfigChanged(t *testing.T) {
	hub, conn := dialTestHub(t)

	hub.BroadcastClassConfigChanged()

	msg := readMessage(t, conn)
	if msg.Type != "class_config_changed" {
		t.Errorf("message type = %q, want class_config_changed", msg.Type)
	}
}

func TestBroadcastScoresChanged(t *testing.T) {
	hub, conn := dialTestHub(t)

	hub.BroadcastScoresChanged("routine-1")

	msg := readMessage(t, conn)
	if msg.Type != "scores_changed" {
		t.Errorf("message type = %q, want scores_changed", msg.Type)
	}
}
