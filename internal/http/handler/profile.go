package handler

import (
	"github.com/gofiber/fiber/v2"

	"brilliantstylist/internal/http/middleware"
	"brilliantstylist/internal/service"
)

// GetProfile returns the profile, submissions and stats of the signed-in player.
//
//	@Summary	Profile
//	@Tags		profile
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	service.ProfileView
//	@Failure	404	{object}	errorPayload
//	@Router		/profile [get]
func GetProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.Get(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(v)
	}
}

// UpdateProfile changes the display name and optionally the avatar
// (multipart/form-data, fields: display_name, avatar).
//
//	@Summary	Update profile
//	@Tags		profile
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		display_name	formData	string	true	"Display name"
//	@Param		avatar			formData	file	false	"Avatar image"
//	@Success	200				{object}	model.Profile
//	@Failure	400				{object}	errorPayload
//	@Failure	415				{object}	errorPayload
//	@Router		/profile [patch]
func UpdateProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.ProfileUpdate{DisplayName: c.FormValue("display_name")}

		if fh, err := c.FormFile("avatar"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()
			in.Avatar = f
		}

		p, err := svc.Update(c.UserContext(), middleware.UserID(c), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}
