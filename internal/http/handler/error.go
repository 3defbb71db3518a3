package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"brilliantstylist/internal/http/middleware"
	"brilliantstylist/internal/imaging"
	"brilliantstylist/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "ALREADY_VOTED", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// Sentinel messages are written for players, so they are safe to return as-is.
var serviceErrors = []struct {
	err    error
	status int
	code   string
}{
	{service.ErrIDRequired, fiber.StatusBadRequest, "BAD_REQUEST"},
	{service.ErrInvalidEmail, fiber.StatusBadRequest, "INVALID_EMAIL"},
	{service.ErrInvalidPassword, fiber.StatusBadRequest, "INVALID_PASSWORD"},
	{service.ErrInvalidCard, fiber.StatusBadRequest, "INVALID_CARD"},
	{service.ErrFileRequired, fiber.StatusBadRequest, "FILE_REQUIRED"},
	{service.ErrInvalidVote, fiber.StatusBadRequest, "INVALID_VOTE"},
	{service.ErrInvalidDisplayName, fiber.StatusBadRequest, "INVALID_DISPLAY_NAME"},
	{service.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{service.ErrOwnSubmission, fiber.StatusForbidden, "OWN_SUBMISSION"},
	{service.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrPromptNotFound, fiber.StatusNotFound, "PROMPT_NOT_FOUND"},
	{service.ErrNoPairs, fiber.StatusNotFound, "NO_PAIRS"},
	{service.ErrEmailTaken, fiber.StatusConflict, "EMAIL_TAKEN"},
	{service.ErrAlreadyVoted, fiber.StatusConflict, "ALREADY_VOTED"},
	{service.ErrNotAnImage, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE"},
	{imaging.ErrUnsupportedImage, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE"},
}

// serviceError translates a service failure into the error envelope.
// Anything unrecognised is logged and reported as INTERNAL_ERROR.
func serviceError(c *fiber.Ctx, err error) error {
	for _, e := range serviceErrors {
		if errors.Is(err, e.err) {
			return writeError(c, e.status, e.code, e.err.Error())
		}
	}

	middleware.Log(c).Error("request failed",
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "authentication required")
		case fiber.StatusForbidden:
			return writeError(c, status, "FORBIDDEN", "forbidden")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			middleware.Log(c).Error("unhandled error", zap.Error(err))
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
