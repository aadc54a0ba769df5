package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/predictor"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/services"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/validation"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

const (
	detailInternal           = "Internal server error"
	detailPredictionDown     = "Model Service unavailable"
	detailModelNotLoaded     = "Prediction service unavailable: model artifacts are not loaded."
	detailInvalidRequestBody = "Invalid request body"
)

// errorStatus maps service errors onto the HTTP status and detail clients see.
func errorStatus(err error) (int, string) {
	var pu *services.PredictionUnavailableError
	switch {
	case errors.Is(err, services.ErrEntryNotFound):
		return fiber.StatusNotFound, "Entry not found"
	case errors.Is(err, services.ErrNotOwner):
		return fiber.StatusForbidden, "Not authorized to access this entry"
	case errors.As(err, &pu), errors.Is(err, predictor.ErrUnavailable):
		return fiber.StatusServiceUnavailable, detailPredictionDown
	case errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusBadRequest, "Email already registered"
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, services.ErrInvalidToken):
		return fiber.StatusUnauthorized, "Invalid or expired refresh token"
	case errors.Is(err, services.ErrPasswordRequired):
		return fiber.StatusBadRequest, "Password is required"
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound, "User not found"
	default:
		return fiber.StatusInternalServerError, detailInternal
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status, detail := errorStatus(err)
	if status >= fiber.StatusInternalServerError && status != fiber.StatusServiceUnavailable {
		slog.ErrorContext(c.UserContext(), "request failed",
			"method", c.Method(), "path", c.Path(), "error", err.Error())
		captureError(c, err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Detail: detail})
}

func respondValidation(c *fiber.Ctx, verr *validation.RequestValidationError) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
		Error:  true,
		Detail: verr.First(),
		Errors: verr.Fields,
	})
}

// bind decodes and validates the body into req. On failure it has already
// written a 422 response and returns false.
func bind(c *fiber.Ctx, req any) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: true, Detail: detailInvalidRequestBody,
		})
	}
	if verr := validation.ValidateStruct(req); verr != nil {
		return false, respondValidation(c, verr)
	}
	return true, nil
}

func captureError(c *fiber.Ctx, err error) {
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}

// ErrorHandler is the Fiber error handler. 5xx details never reach the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := detailInternal

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		detail = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "unhandled server error",
			"method", c.Method(), "path", c.Path(), "error", err.Error())
		captureError(c, err)
		detail = detailInternal
	}

	return c.Status(code).JSON(dto.ErrorResponse{Error: true, Detail: detail})
}
