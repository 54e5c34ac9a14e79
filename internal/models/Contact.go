package models

import "gorm.io/gorm"

const (
	ContactStatusPending = "pending"
	ContactStatusReplied = "replied"
)

// ContactMessage is a public inquiry plus an optional admin reply.
// Status is "replied" iff a reply has been set at least once; replying again
// overwrites the text and leaves the status alone.
type ContactMessage struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Reply   string `json:"reply"`
	Status  string `json:"status"`
}
