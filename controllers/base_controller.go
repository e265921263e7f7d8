package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	authhandler "staffhub-backend/lib/auth"
	availabilityhandler "staffhub-backend/lib/availability"
	documenthandler "staffhub-backend/lib/document"
	filestorage "staffhub-backend/lib/file-storage"
	knowledgehandler "staffhub-backend/lib/knowledge"
	schedulehandler "staffhub-backend/lib/schedule"
	shifthandler "staffhub-backend/lib/shift"
	timeentryhandler "staffhub-backend/lib/timeentry"
	timesheethandler "staffhub-backend/lib/timesheet"
	updatehandler "staffhub-backend/lib/update"
	usershandler "staffhub-backend/lib/users"
	"staffhub-backend/middleware"
	apimodels "staffhub-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parsing failed")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is required")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.WithFields(log.Fields{
		"method":  ctx.Method(),
		"path":    ctx.Path(),
		"user_id": middleware.GetUserID(ctx),
	})
}

// SendError maps handler errors onto HTTP statuses. Expected domain
// errors go back to the caller with their own message; everything else
// is logged and hidden behind the generic message.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	status := statusOf(err)
	if status == fiber.StatusInternalServerError {
		logger.WithError(err).Error(hMsg)
		return ctx.Status(status).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}

var notFoundErrs = []error{
	timeentryhandler.ErrNotFound,
	usershandler.ErrNotFound,
	documenthandler.ErrNotFound,
	timesheethandler.ErrNotFound,
	schedulehandler.ErrNotFound,
	shifthandler.ErrNotFound,
	availabilityhandler.ErrNotFound,
	knowledgehandler.ErrNotFound,
	updatehandler.ErrNotFound,
	filestorage.ErrNotFound,
}

var forbiddenErrs = []error{
	timeentryhandler.ErrForbidden,
	timeentryhandler.ErrLocked,
	documenthandler.ErrForbidden,
	timesheethandler.ErrForbidden,
	shifthandler.ErrForbidden,
	availabilityhandler.ErrForbidden,
	knowledgehandler.ErrForbidden,
	updatehandler.ErrForbidden,
}

var badRequestErrs = []error{
	timeentryhandler.ErrAlreadyClockedIn,
	timeentryhandler.ErrNoActiveEntry,
	timeentryhandler.ErrInvalidTransition,
	timeentryhandler.ErrPhotoRequired,
	timesheethandler.ErrWrongStatus,
	timesheethandler.ErrAlreadyExists,
}

func statusOf(err error) int {
	if errors.Is(err, authhandler.ErrInvalidCredentials) {
		return fiber.StatusUnauthorized
	}
	for _, known := range forbiddenErrs {
		if errors.Is(err, known) {
			return fiber.StatusForbidden
		}
	}
	for _, known := range notFoundErrs {
		if errors.Is(err, known) {
			return fiber.StatusNotFound
		}
	}
	for _, known := range badRequestErrs {
		if errors.Is(err, known) {
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusInternalServerError
}
