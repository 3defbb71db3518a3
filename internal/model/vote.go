package model

import "time"

// VoteType is the category of a peer rating.
type VoteType string

const (
	VoteBrilliant VoteType = "brilliant"
	VoteMeh       VoteType = "meh"
)

// Valid reports whether v is one of the accepted vote categories.
func (v VoteType) Valid() bool {
	return v == VoteBrilliant || v == VoteMeh
}

// Vote is one peer rating on a submission.
type Vote struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submission_id"`
	VoterID      string    `json:"voter_id"`
	Type         VoteType  `json:"vote_type"`
	VotedAt      time.Time `json:"voted_at"`
}

// VoteCounts is the per-submission tally.
type VoteCounts struct {
	Brilliant int `json:"brilliant"`
	Meh       int `json:"meh"`
}

// Total is the number of votes of any kind.
func (c VoteCounts) Total() int {
	return c.Brilliant + c.Meh
}

// VotePair is the next submission offered to a voter.
type VotePair struct {
	Submission   Submission `json:"submission"`
	Prompt       Prompt     `json:"prompt"`
	UploaderName string     `json:"uploader_name"`
	ImageURL     string     `json:"image_url"`
	Counts       VoteCounts `json:"counts"`
}
