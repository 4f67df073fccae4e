package wsproxy

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const controlWriteTimeout = 5 * time.Second

// Forwarder runs the bidirectional relay between a device connection and
// the upstream instance connection. Each direction runs its own loop; the
// relay ends as soon as either loop ends, and both sockets are closed so
// the other loop cannot stall half open.
type Forwarder struct {
	device   *websocket.Conn
	upstream *websocket.Conn
	logger   *slog.Logger

	deviceWriteMu   sync.Mutex
	upstreamWriteMu sync.Mutex
}

// NewForwarder is the constructor for Forwarder.
func NewForwarder(device, upstream *websocket.Conn, logger *slog.Logger) *Forwarder {
	return &Forwarder{
		device:   device,
		upstream: upstream,
		logger:   logger,
	}
}

// Run relays frames until either side closes or errors, then tears down
// both connections. The returned error describes which leg ended first;
// a clean close from either peer returns nil.
func (f *Forwarder) Run(ctx context.Context) error {
	// Control frames are surfaced through handlers, not ReadMessage, so
	// each leg forwards ping/pong to the other via WriteControl.
	f.forwardControl(f.device, f.upstream, &f.upstreamWriteMu)
	f.forwardControl(f.upstream, f.device, &f.deviceWriteMu)

	results := make(chan error, 2)

	go func() {
		results <- f.relay(f.device, f.upstream, &f.upstreamWriteMu, "device->instance")
	}()
	go func() {
		results <- f.relay(f.upstream, f.device, &f.deviceWriteMu, "instance->device")
	}()

	var firstErr error
	select {
	case firstErr = <-results:
	case <-ctx.Done():
		firstErr = ctx.Err()
	}

	// Tearing down both sockets unblocks the surviving loop.
	f.device.Close()
	f.upstream.Close()
	<-results

	if firstErr != nil && websocket.IsCloseError(errors.Cause(firstErr),
		websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
		return nil
	}

	return firstErr
}

// relay copies data frames from src to dst until src ends.
func (f *Forwarder) relay(src, dst *websocket.Conn, dstMu *sync.Mutex, direction string) error {
	for {
		messageType, data, err := src.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				// Propagate the peer's close code and reason to the
				// other leg before reporting.
				f.writeControl(dst, dstMu, frameFromCloseError(closeErr))
			}

			return errors.Wrap(err, direction)
		}

		frame, ok := frameFromMessage(messageType, data)
		if !ok {
			// Opaque low-level frame types are dropped.
			continue
		}

		dstMu.Lock()
		err = dst.WriteMessage(frame.messageType(), frame.Data)
		dstMu.Unlock()
		if err != nil {
			return errors.Wrap(err, direction)
		}
	}
}

// forwardControl wires src's ping/pong handlers to replay the control
// frames onto dst.
func (f *Forwarder) forwardControl(src, dst *websocket.Conn, dstMu *sync.Mutex) {
	src.SetPingHandler(func(appData string) error {
		f.writeControl(dst, dstMu, Frame{Type: FramePing, Data: []byte(appData)})

		return nil
	})
	src.SetPongHandler(func(appData string) error {
		f.writeControl(dst, dstMu, Frame{Type: FramePong, Data: []byte(appData)})

		return nil
	})
}

func (f *Forwarder) writeControl(dst *websocket.Conn, dstMu *sync.Mutex, frame Frame) {
	payload := frame.Data
	if frame.Type == FrameClose {
		payload = frame.closePayload()
	}

	dstMu.Lock()
	err := dst.WriteControl(frame.messageType(), payload, time.Now().Add(controlWriteTimeout))
	dstMu.Unlock()
	if err != nil && f.logger != nil {
		f.logger.Debug("control frame forward failed", slog.String("error", err.Error()))
	}
}
