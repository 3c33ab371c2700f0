package model

import "time"

// ContactMessage is one submission from the campus contact form.
type ContactMessage struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	OriginSchool string    `json:"originSchool"`
	Facebook     string    `json:"facebook"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// Event is one entry of the news & events feed.
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}
