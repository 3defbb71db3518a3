package handler

import (
	"github.com/gofiber/fiber/v2"

	"brilliantstylist/internal/http/middleware"
	"brilliantstylist/internal/model"
	"brilliantstylist/internal/service"
)

type castVoteRequest struct {
	SubmissionID string         `json:"submission_id"`
	VoteType     model.VoteType `json:"vote_type"`
}

// NextPair offers the next submission to rate. Skipping is another call.
//
//	@Summary	Next submission to vote on
//	@Tags		votes
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	model.VotePair
//	@Failure	404	{object}	errorPayload
//	@Router		/votes/next [get]
func NextPair(svc service.VoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pair, err := svc.NextPair(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(pair)
	}
}

// CastVote records a brilliant or meh vote.
//
//	@Summary	Cast vote
//	@Tags		votes
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		castVoteRequest	true	"Vote"
//	@Success	201		{object}	service.CastResult
//	@Failure	400		{object}	errorPayload
//	@Failure	403		{object}	errorPayload
//	@Failure	409		{object}	errorPayload
//	@Router		/votes [post]
func CastVote(svc service.VoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in castVoteRequest
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := svc.Cast(c.UserContext(), middleware.UserID(c), in.SubmissionID, in.VoteType)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
