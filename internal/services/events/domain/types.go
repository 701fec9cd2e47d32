// Package domain defines the types and ports of the events stub
package domain

import "time"

// Receipt acknowledges one POST /events. It is logged, never returned to the caller
type Receipt struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
	Size       int       `json:"size"`
}

// Rules maps a top level JSON field to a validator tag string ("name" -> "required,min=2")
type Rules map[string]string
