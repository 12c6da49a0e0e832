package websockets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/library-lending/pkg/websockets"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublish(t *testing.T) {
	hub := websockets.NewHub(nil)
	attached := make(chan struct{})

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Attach("local-1", conn)
		close(attached)
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	select {
	case <-attached:
	case <-time.After(2 * time.Second):
		t.Fatal("connection was not attached")
	}
	assert.Equal(t, 1, hub.Len())

	msg := websockets.Message{
		Type:    websockets.MessageTypeLoanUpdate,
		Payload: websockets.LoanUpdatePayload{Event: websockets.LoanUpdated, LoanID: "loan-1", Status: "returned"},
	}
	require.NoError(t, hub.Publish(context.Background(), msg))

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := client.ReadMessage()
	require.NoError(t, err)

	var got struct {
		Type    string `json:"type"`
		Payload struct {
			Event  string `json:"event"`
			LoanID string `json:"loan_id"`
		} `json:"payload"`
	}
	require.NoError(t, jsoniter.Unmarshal(data, &got))
	assert.Equal(t, "loanUpdate", got.Type)
	assert.Equal(t, "updated", got.Payload.Event)
	assert.Equal(t, "loan-1", got.Payload.LoanID)

	hub.Detach("local-1")
	assert.Equal(t, 0, hub.Len())
}
