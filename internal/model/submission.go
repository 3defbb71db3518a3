package model

import "time"

// PlaceholderImage is shown when a player has not uploaded anything yet.
const PlaceholderImage = "/api/placeholder-image"

// Submission is a photo a player uploaded as their recreation of a prompt.
type Submission struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	PromptID    string    `json:"prompt_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	PublicURL   string    `json:"public_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// ImageURL picks the best displayable image for the submission.
func (s Submission) ImageURL() string {
	switch {
	case s.PublicURL != "":
		return s.PublicURL
	case s.ImagePath != "":
		return s.ImagePath
	default:
		return PlaceholderImage
	}
}

// SubmissionStats is a submission together with its vote tally.
type SubmissionStats struct {
	Submission
	Counts VoteCounts `json:"counts"`
}
