// Package domain defines the types and ports of the message stub
package domain

// DefaultText is what the stub answers unless configured otherwise
const DefaultText = "Hello from the db!"

// Message is the body of GET /api/message
type Message struct {
	Text string `json:"text" example:"Hello from the db!"`
}
