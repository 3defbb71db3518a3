package handler

import (
	"github.com/gofiber/fiber/v2"

	"brilliantstylist/internal/game"
	"brilliantstylist/internal/http/middleware"
)

// Timers is the per-player countdown store.
type Timers interface {
	Start(userID string) game.Snapshot
	Pause(userID string) game.Snapshot
	Reset(userID string) game.Snapshot
	Snapshot(userID string) game.Snapshot
}

// GetTimer returns the player's countdown.
//
//	@Summary	Countdown state
//	@Tags		game
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	game.Snapshot
//	@Router		/game/timer [get]
func GetTimer(timers Timers) fiber.Handler {
	return timerAction(timers.Snapshot)
}

// StartTimer rewinds the countdown to the full challenge length and runs it.
//
//	@Summary	Start countdown
//	@Tags		game
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	game.Snapshot
//	@Router		/game/timer/start [post]
func StartTimer(timers Timers) fiber.Handler {
	return timerAction(timers.Start)
}

// PauseTimer stops the countdown, keeping the remaining time.
//
//	@Summary	Pause countdown
//	@Tags		game
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	game.Snapshot
//	@Router		/game/timer/pause [post]
func PauseTimer(timers Timers) fiber.Handler {
	return timerAction(timers.Pause)
}

// ResetTimer stops and rewinds the countdown.
//
//	@Summary	Reset countdown
//	@Tags		game
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	game.Snapshot
//	@Router		/game/timer/reset [post]
func ResetTimer(timers Timers) fiber.Handler {
	return timerAction(timers.Reset)
}

func timerAction(fn func(userID string) game.Snapshot) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fn(middleware.UserID(c)))
	}
}
