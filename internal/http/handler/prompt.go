package handler

import (
	"github.com/gofiber/fiber/v2"

	"brilliantstylist/internal/model"
	"brilliantstylist/internal/service"
)

type cardResponse struct {
	Message string            `json:"message"`
	Card    model.FashionCard `json:"card"`
}

// CurrentPrompt returns the active styling challenge.
//
//	@Summary	Current prompt
//	@Tags		prompts
//	@Produce	json
//	@Success	200	{object}	model.Prompt
//	@Router		/prompts/current [get]
func CurrentPrompt(svc service.PromptService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Current(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// GetPrompt returns one prompt by id; "default" is the built-in prompt.
//
//	@Summary	Prompt by id
//	@Tags		prompts
//	@Produce	json
//	@Param		id	path		string	true	"Prompt ID"
//	@Success	200	{object}	model.Prompt
//	@Failure	404	{object}	errorPayload
//	@Router		/prompts/{id} [get]
func GetPrompt(svc service.PromptService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// CreateCard adds an admin-curated fashion card.
//
//	@Summary	Add fashion card
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		service.CardInput	true	"Card"
//	@Success	201		{object}	cardResponse
//	@Failure	400		{object}	errorPayload
//	@Failure	403		{object}	errorPayload
//	@Router		/admin/cards [post]
func CreateCard(svc service.PromptService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CardInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		card, err := svc.CreateCard(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(cardResponse{Message: "Card added!", Card: *card})
	}
}

// ListCards returns fashion cards, newest first.
//
//	@Summary	List fashion cards
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	model.FashionCard
//	@Router		/admin/cards [get]
func ListCards(svc service.PromptService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cards, err := svc.ListCards(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		if cards == nil {
			cards = []model.FashionCard{}
		}
		return c.JSON(cards)
	}
}
