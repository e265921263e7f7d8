package controllers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	authhandler "staffhub-backend/lib/auth"
	timeentryhandler "staffhub-backend/lib/timeentry"
	usershandler "staffhub-backend/lib/users"
)

func TestStatusOf(t *testing.T) {
	t.Run("locked entries are a permission problem", func(t *testing.T) {
		require.Equal(t, fiber.StatusForbidden, statusOf(timeentryhandler.ErrLocked))
		require.Equal(t, fiber.StatusForbidden, statusOf(errors.Wrap(timeentryhandler.ErrLocked, "edit")))
	})

	t.Run("disallowed transitions are client errors", func(t *testing.T) {
		err := errors.Wrap(timeentryhandler.ErrInvalidTransition, "approve-edit is not allowed on a completed entry with approval status approved")
		require.Equal(t, fiber.StatusBadRequest, statusOf(err))
	})

	t.Run("known sentinels keep their statuses", func(t *testing.T) {
		require.Equal(t, fiber.StatusUnauthorized, statusOf(authhandler.ErrInvalidCredentials))
		require.Equal(t, fiber.StatusForbidden, statusOf(timeentryhandler.ErrForbidden))
		require.Equal(t, fiber.StatusNotFound, statusOf(usershandler.ErrNotFound))
		require.Equal(t, fiber.StatusBadRequest, statusOf(timeentryhandler.ErrAlreadyClockedIn))
	})

	t.Run("everything else is a 500", func(t *testing.T) {
		require.Equal(t, fiber.StatusInternalServerError, statusOf(errors.New("connection reset")))
	})
}
