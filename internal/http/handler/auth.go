package handler

import (
	"github.com/gofiber/fiber/v2"

	"brilliantstylist/internal/http/middleware"
	"brilliantstylist/internal/model"
	"brilliantstylist/internal/service"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpResponse struct {
	Message string     `json:"message"`
	User    model.User `json:"user"`
}

// SignUp registers a new player.
//
//	@Summary	Sign up with email and password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		credentials	true	"Credentials"
//	@Success	201		{object}	signUpResponse
//	@Failure	400		{object}	errorPayload
//	@Failure	409		{object}	errorPayload
//	@Router		/auth/sign-up [post]
func SignUp(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in credentials
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		u, err := svc.SignUp(c.UserContext(), in.Email, in.Password)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(signUpResponse{
			Message: "Check your email for confirmation!",
			User:    *u,
		})
	}
}

// SignIn exchanges credentials for a bearer token.
//
//	@Summary	Sign in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		credentials	true	"Credentials"
//	@Success	200		{object}	service.Session
//	@Failure	401		{object}	errorPayload
//	@Router		/auth/sign-in [post]
func SignIn(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in credentials
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		sess, err := svc.SignIn(c.UserContext(), in.Email, in.Password)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(sess)
	}
}

// Me returns the signed-in user and profile.
//
//	@Summary	Current user
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	service.Me
//	@Failure	401	{object}	errorPayload
//	@Router		/auth/me [get]
func Me(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		me, err := svc.CurrentUser(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(me)
	}
}
