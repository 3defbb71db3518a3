package model

import "time"

// AnonymousName is shown for uploaders without a display name.
const AnonymousName = "Anonymous"

type LeaderboardEntry struct {
	Rank           int       `json:"rank"`
	SubmissionID   string    `json:"submission_id"`
	UserID         string    `json:"user_id"`
	DisplayName    string    `json:"display_name"`
	ImageURL       string    `json:"image_url"`
	PromptTitle    string    `json:"prompt_title"`
	BrilliantVotes int       `json:"brilliant_votes"`
	CreatedAt      time.Time `json:"created_at"`
}
