package wsproxy

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// startEchoUpstream runs a ws server that echoes every data message back.
func startEchoUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			messageType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(messageType, data); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	return server
}

// startRelay runs a ws endpoint that bridges each accepted connection to
// the upstream through a Forwarder.
func startRelay(t *testing.T, upstreamURL string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstream, resp, err := websocket.DefaultDialer.Dial(upstreamURL, nil)
		if err != nil {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		if resp != nil {
			resp.Body.Close()
		}

		device, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			upstream.Close()
			return
		}

		forwarder := NewForwarder(device, upstream, slog.New(slog.DiscardHandler))
		_ = forwarder.Run(r.Context())
	}))
	t.Cleanup(server.Close)

	return server
}

func wsURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

func TestForwarder_RelaysDataBothWays(t *testing.T) {
	upstream := startEchoUpstream(t)
	relay := startRelay(t, wsURL(upstream.URL))

	device, resp, err := websocket.DefaultDialer.Dial(wsURL(relay.URL), nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer device.Close()

	require.NoError(t, device.WriteMessage(websocket.TextMessage, []byte(`{"type":"listen"}`)))

	device.SetReadDeadline(time.Now().Add(5 * time.Second))
	messageType, data, err := device.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, messageType)
	assert.Equal(t, `{"type":"listen"}`, string(data))

	require.NoError(t, device.WriteMessage(websocket.BinaryMessage, []byte{0x01, 0x02, 0x03}))

	messageType, data, err = device.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.BinaryMessage, messageType)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, data)
}

func TestForwarder_DeviceCloseTearsDownUpstream(t *testing.T) {
	upstreamClosed := make(chan struct{})

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_, _, err = conn.ReadMessage()
		if err != nil {
			close(upstreamClosed)
		}
	}))
	t.Cleanup(upstream.Close)

	relay := startRelay(t, wsURL(upstream.URL))

	device, resp, err := websocket.DefaultDialer.Dial(wsURL(relay.URL), nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}

	require.NoError(t, device.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
		time.Now().Add(time.Second),
	))
	device.Close()

	select {
	case <-upstreamClosed:
	case <-time.After(5 * time.Second):
		t.Fatal("upstream connection was not torn down after device close")
	}
}

func TestForwarder_CleanCloseReturnsNil(t *testing.T) {
	upstream := startEchoUpstream(t)

	upstreamConn, resp, err := websocket.DefaultDialer.Dial(wsURL(upstream.URL), nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}

	deviceServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		forwarder := NewForwarder(conn, upstreamConn, slog.New(slog.DiscardHandler))
		assert.NoError(t, forwarder.Run(context.Background()))
	}))
	t.Cleanup(deviceServer.Close)

	device, resp, err := websocket.DefaultDialer.Dial(wsURL(deviceServer.URL), nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}

	require.NoError(t, device.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
		time.Now().Add(time.Second),
	))
	device.Close()

	// Give the relay a moment to observe the close and settle.
	time.Sleep(100 * time.Millisecond)
}
