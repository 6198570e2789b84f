package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseEventKind(t *testing.T) {
	require.Equal(t, EventRoomUpdate, ParseEventKind("room_update"))
	require.Equal(t, EventSupplyUpdate, ParseEventKind("supply_update"))
	require.Equal(t, EventUnknown, ParseEventKind("door_open"))
	require.Equal(t, "supply_update", EventSupplyUpdate.String())
}

func TestEvent_JSON(t *testing.T) {
	data, err := json.Marshal(Event{Kind: EventSupplyUpdate, Data: json.RawMessage(`{"room_id":"R1"}`)})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"supply_update","data":{"room_id":"R1"}}`, string(data))

	var ev Event
	require.NoError(t, json.Unmarshal([]byte(`{"type":"mystery","data":1}`), &ev))
	require.Equal(t, EventUnknown, ev.Kind)
	require.Equal(t, "mystery", ev.Name)

	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &ev))
}

func TestHub_PublishReachesSubscriber(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws", Handler(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	connected := make(chan struct{}, 4)
	events := make(chan Event, 4)
	sub := &Subscriber{
		URL:       "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws",
		Backoff:   50 * time.Millisecond,
		OnConnect: func(context.Context) { connected <- struct{}{} },
		OnEvent:   func(_ context.Context, ev Event) { events <- ev },
	}
	go sub.Run(ctx)

	select {
	case <-connected:
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber never connected")
	}
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish(EventSupplyUpdate, SupplyUpdate{RoomID: "R1", Item: "soap", Status: "full"})

	select {
	case ev := <-events:
		require.Equal(t, EventSupplyUpdate, ev.Kind)
		var payload SupplyUpdate
		require.NoError(t, json.Unmarshal(ev.Data, &payload))
		require.Equal(t, "soap", payload.Item)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestHub_NilPublishIsNoop(t *testing.T) {
	var hub *Hub
	hub.Publish(EventRoomUpdate, RoomUpdate{Deleted: "R1"})
}

func TestHandler_NilHub(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", Handler(nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ws", nil))
	require.Equal(t, 503, w.Code)
}

func TestSubscriber_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := &Subscriber{URL: "ws://127.0.0.1:1/ws", Backoff: 10 * time.Millisecond}
	done := make(chan struct{})
	go func() {
		sub.Run(ctx)
		close(done)
	}()
	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not stop")
	}
}
