package service

import "errors"

var (
	ErrIDRequired         = errors.New("id is required")
	ErrNotFound           = errors.New("not found")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPassword    = errors.New("password must be between 6 and 72 bytes")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidCard        = errors.New("all card fields are required and image_url must be an http(s) URL")
	ErrFileRequired       = errors.New("a photo is required")
	ErrNotAnImage         = errors.New("only image uploads are accepted")
	ErrPromptNotFound     = errors.New("prompt not found")
	ErrInvalidVote        = errors.New("vote type must be brilliant or meh")
	ErrOwnSubmission      = errors.New("cannot vote on your own submission")
	ErrAlreadyVoted       = errors.New("already voted on this submission")
	ErrNoPairs            = errors.New("no submissions left to vote on")
	ErrInvalidDisplayName = errors.New("display name must be between 1 and 50 characters")
)
