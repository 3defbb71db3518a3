package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"brilliantstylist/internal/model"
	"brilliantstylist/internal/service"
)

// Leaderboard ranks submissions by brilliant votes. limit=0 or absent uses the default size.
//
//	@Summary	Leaderboard
//	@Tags		leaderboard
//	@Produce	json
//	@Param		limit	query	int	false	"Entries to return"
//	@Success	200		{array}	model.LeaderboardEntry
//	@Failure	400		{object}	errorPayload
//	@Router		/leaderboard [get]
func Leaderboard(svc service.LeaderboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "0"))
		if err != nil || limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		entries, err := svc.Top(c.UserContext(), limit)
		if err != nil {
			return serviceError(c, err)
		}
		if entries == nil {
			entries = []model.LeaderboardEntry{}
		}
		return c.JSON(entries)
	}
}
