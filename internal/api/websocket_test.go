package api

import (
	"encoding/json"
	"testing"
	"time"
)

func newHubClient(hub *WebSocketHub) *WebSocketClient {
	return &WebSocketClient{
		hub:  hub,
		send: make(chan []byte, 10),
	}
}

func TestWebSocketHub_AddRemoveClient(t *testing.T) {
	hub := NewWebSocketHub()
	client := newHubClient(hub)

	hub.addClient(client)
	if hub.ClientCount() != 1 {
		t.Errorf("Expected 1 client, got %d", hub.ClientCount())
	}

	hub.removeClient(client)
	if hub.ClientCount() != 0 {
		t.Errorf("Expected 0 clients, got %d", hub.ClientCount())
	}
}

func TestWebSocketHub_RemoveClientClosesChannel(t *testing.T) {
	hub := NewWebSocketHub()
	client := newHubClient(hub)

	hub.addClient(client)
	hub.removeClient(client)

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("Channel should be closed")
		}
	default:
		t.Error("Channel should be closed and readable")
	}
}

func TestWebSocketHub_RemoveClientIdempotent(t *testing.T) {
	hub := NewWebSocketHub()
	client := newHubClient(hub)

	hub.addClient(client)
	hub.removeClient(client)
	hub.removeClient(client) // Should not panic
}

func TestWebSocketHub_OnConfigChange(t *testing.T) {
	hub := NewWebSocketHub()
	client := newHubClient(hub)
	hub.addClient(client)

	hub.OnConfigChange(ConfigChange{
		Type: ConfigChangeModified,
		Kind: ConfigChangeKindDocument,
		File: "termdock.json",
	})

	select {
	case data := <-client.send:
		var msg WebSocketMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("Failed to unmarshal broadcast: %v", err)
		}
		if msg.Type != "config_change" {
			t.Errorf("Expected type config_change, got %q", msg.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("No message broadcast")
	}
}

func TestWebSocketHub_NotifyDocumentChanged(t *testing.T) {
	hub := NewWebSocketHub()
	client := newHubClient(hub)
	hub.addClient(client)

	hub.NotifyDocumentChanged()

	select {
	case data := <-client.send:
		var msg WebSocketMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("Failed to unmarshal broadcast: %v", err)
		}
		if msg.Type != "document_changed" {
			t.Errorf("Expected type document_changed, got %q", msg.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("No message broadcast")
	}
}

// A client can disconnect between registration and the first hub send,
// leaving its channel closed. The send must absorb that, not panic.
func TestWebSocketHub_TrySendToRemovedClient(t *testing.T) {
	hub := NewWebSocketHub()
	client := newHubClient(hub)

	hub.addClient(client)
	hub.removeClient(client)

	hub.trySend(client, []byte(`{"type":"connected"}`))
}

func TestWebSocketHub_TrySendFullBufferDropsClient(t *testing.T) {
	hub := NewWebSocketHub()
	client := &WebSocketClient{
		hub:  hub,
		send: make(chan []byte), // unbuffered, nobody reading
	}
	hub.addClient(client)

	hub.trySend(client, []byte("x"))

	if hub.ClientCount() != 0 {
		t.Errorf("Expected stalled client removed, got %d clients", hub.ClientCount())
	}
}
