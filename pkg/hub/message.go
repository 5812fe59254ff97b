// Package hub fans overlay state out to websocket viewers using the
// channel-based broadcast pattern.
package hub

// Message is one text frame queued for every connected viewer.
type Message struct {
	Data []byte
}
