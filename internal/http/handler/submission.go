package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"brilliantstylist/internal/http/middleware"
	"brilliantstylist/internal/model"
	"brilliantstylist/internal/service"
)

type uploadResponse struct {
	Message    string           `json:"message"`
	Submission model.Submission `json:"submission"`
}

// UploadSubmission stores an outfit photo (multipart/form-data, fields: file, prompt_id).
//
//	@Summary	Upload outfit photo
//	@Tags		submissions
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		file		formData	file	true	"Photo"
//	@Param		prompt_id	formData	string	false	"Prompt ID"
//	@Success	201			{object}	uploadResponse
//	@Failure	400			{object}	errorPayload
//	@Failure	415			{object}	errorPayload
//	@Router		/submissions [post]
func UploadSubmission(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		sub, err := svc.Upload(c.UserContext(), service.UploadInput{
			UserID:      middleware.UserID(c),
			PromptID:    c.FormValue("prompt_id"),
			Filename:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
			Body:        f,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(uploadResponse{
			Message:    "Photo uploaded successfully!",
			Submission: *sub,
		})
	}
}

// RevealSubmission returns the player's latest photo with its prompt.
//
//	@Summary	Reveal latest photo
//	@Tags		submissions
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	service.Reveal
//	@Router		/submissions/reveal [get]
func RevealSubmission(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := svc.Reveal(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(r)
	}
}

// MySubmissions lists the player's photos with vote counts, newest first.
//
//	@Summary	My submissions
//	@Tags		submissions
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	model.SubmissionStats
//	@Router		/submissions/mine [get]
func MySubmissions(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subs, err := svc.ListByUser(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return serviceError(c, err)
		}
		if subs == nil {
			subs = []model.SubmissionStats{}
		}
		return c.JSON(subs)
	}
}

// SubmissionVotes returns the brilliant/meh tally.
//
//	@Summary	Vote counts
//	@Tags		votes
//	@Produce	json
//	@Param		id	path		string	true	"Submission ID"
//	@Success	200	{object}	model.VoteCounts
//	@Failure	400	{object}	errorPayload
//	@Router		/submissions/{id}/votes [get]
func SubmissionVotes(svc service.VoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		counts, err := svc.Counts(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(counts)
	}
}
