// Package wsproxy relays WebSocket traffic between a device and its bound
// instance.
package wsproxy

import (
	"github.com/gorilla/websocket"
)

// FrameType enumerates the message kinds both transports share.
type FrameType int

const (
	// FrameText is a UTF-8 text message.
	FrameText FrameType = iota
	// FrameBinary is an opaque binary message.
	FrameBinary
	// FramePing is a keepalive probe.
	FramePing
	// FramePong answers a ping.
	FramePong
	// FrameClose carries an optional close code and reason.
	FrameClose
)

// Frame is the internal tagged union both connection legs convert to
// and from. Payloads pass through byte for byte; only the framing is
// translated.
type Frame struct {
	Type FrameType
	Data []byte

	CloseCode   int
	CloseReason string
}

// frameFromMessage converts a message read from a connection into a Frame.
// Message types outside the shared union are reported as unsupported and
// dropped by the caller.
func frameFromMessage(messageType int, data []byte) (Frame, bool) {
	switch messageType {
	case websocket.TextMessage:
		return Frame{Type: FrameText, Data: data}, true
	case websocket.BinaryMessage:
		return Frame{Type: FrameBinary, Data: data}, true
	case websocket.PingMessage:
		return Frame{Type: FramePing, Data: data}, true
	case websocket.PongMessage:
		return Frame{Type: FramePong, Data: data}, true
	case websocket.CloseMessage:
		return Frame{Type: FrameClose, CloseCode: websocket.CloseNormalClosure}, true
	default:
		return Frame{}, false
	}
}

// frameFromCloseError converts a peer's close frame into a Frame.
func frameFromCloseError(closeErr *websocket.CloseError) Frame {
	code := closeErr.Code
	if code == websocket.CloseNoStatusReceived {
		code = websocket.CloseNormalClosure
	}

	return Frame{
		Type:        FrameClose,
		CloseCode:   code,
		CloseReason: closeErr.Text,
	}
}

// messageType maps the frame back onto the wire-level message type.
func (f Frame) messageType() int {
	switch f.Type {
	case FrameText:
		return websocket.TextMessage
	case FrameBinary:
		return websocket.BinaryMessage
	case FramePing:
		return websocket.PingMessage
	case FramePong:
		return websocket.PongMessage
	case FrameClose:
		return websocket.CloseMessage
	default:
		return websocket.BinaryMessage
	}
}

// closePayload renders the close frame body for FrameClose frames.
func (f Frame) closePayload() []byte {
	return websocket.FormatCloseMessage(f.CloseCode, f.CloseReason)
}
