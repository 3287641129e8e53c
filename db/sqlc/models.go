package db

import (
	"time"
)

type Post struct {
	ID        int64     `json:"id"`
	Op        int64     `json:"op"`
	Board     string    `json:"board"`
	Editing   bool      `json:"editing"`
	Body      string    `json:"body"`
	Commands  []byte    `json:"commands"`
	Links     []byte    `json:"links"`
	Backlinks []byte    `json:"backlinks"`
	CreatedAt time.Time `json:"created_at"`
}
