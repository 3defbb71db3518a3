package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"brilliantstylist/internal/http/middleware"
	"brilliantstylist/internal/service"
)

// Deps are the collaborators the HTTP routes are wired to.
type Deps struct {
	DB       *sql.DB
	Tokens   middleware.TokenParser
	AdminKey string

	Auth        service.AuthService
	Prompts     service.PromptService
	Timers      Timers
	Submissions service.SubmissionService
	Votes       service.VoteService
	Leaderboard service.LeaderboardService
	Profiles    service.ProfileService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	requireUser := middleware.Auth(d.Tokens)

	auth := app.Group("/auth")
	auth.Post("/sign-up", SignUp(d.Auth))
	auth.Post("/sign-in", SignIn(d.Auth))
	auth.Get("/me", requireUser, Me(d.Auth))

	app.Get("/prompts/current", CurrentPrompt(d.Prompts))
	app.Get("/prompts/:id", GetPrompt(d.Prompts))

	admin := app.Group("/admin", requireUser, middleware.AdminKey(d.AdminKey))
	admin.Get("/cards", ListCards(d.Prompts))
	admin.Post("/cards", CreateCard(d.Prompts))

	timer := app.Group("/game/timer", requireUser)
	timer.Get("", GetTimer(d.Timers))
	timer.Post("/start", StartTimer(d.Timers))
	timer.Post("/pause", PauseTimer(d.Timers))
	timer.Post("/reset", ResetTimer(d.Timers))

	// Static segments are registered before /:id so they win the match.
	app.Post("/submissions", requireUser, UploadSubmission(d.Submissions))
	app.Get("/submissions/reveal", requireUser, RevealSubmission(d.Submissions))
	app.Get("/submissions/mine", requireUser, MySubmissions(d.Submissions))
	app.Get("/submissions/:id/votes", SubmissionVotes(d.Votes))

	app.Get("/votes/next", requireUser, NextPair(d.Votes))
	app.Post("/votes", requireUser, CastVote(d.Votes))

	app.Get("/leaderboard", Leaderboard(d.Leaderboard))

	app.Get("/profile", requireUser, GetProfile(d.Profiles))
	app.Patch("/profile", requireUser, UpdateProfile(d.Profiles))
}
