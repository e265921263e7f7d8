package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
	"staffhub-backend/models"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/time/entries/{id}/approve [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/time/entries/123-321/approve"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/time/entries/approve"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/shifts/{id}/assign [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/shifts/qwe-ewr123-wr-12/assign"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/shifts/assign"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`rule table lookups`, func(t *testing.T) {
		NewHandler()

		check, found := Instance.GetRuleFunc("POST", "/api/v1/time/auto-clock-out")
		require.Equal(t, true, found)
		require.Equal(t, true, check("u1", models.AdminRole, "/api/v1/time/auto-clock-out"))
		require.Equal(t, true, check("u1", models.OwnerRole, "/api/v1/time/auto-clock-out"))
		require.Equal(t, false, check("u1", models.StaffRole, "/api/v1/time/auto-clock-out"))
		require.Equal(t, false, check("u1", models.PayrollRole, "/api/v1/time/auto-clock-out"))

		check, found = Instance.GetRuleFunc("POST", "/api/v1/time/entries/abc-123/approve")
		require.Equal(t, true, found)
		require.Equal(t, false, check("u1", models.ManagerRole, "/api/v1/time/entries/abc-123/approve"))
		require.Equal(t, true, check("u1", models.AdminRole, "/api/v1/time/entries/abc-123/approve"))

		check, found = Instance.GetRuleFunc("PUT", "/api/v1/timesheets/abc-123/approve")
		require.Equal(t, true, found)
		require.Equal(t, true, check("u1", models.PayrollRole, "/api/v1/timesheets/abc-123/approve"))
		require.Equal(t, false, check("u1", models.SchedulerRole, "/api/v1/timesheets/abc-123/approve"))

		_, found = Instance.GetRuleFunc("GET", "/api/v1/unknown/route")
		require.Equal(t, false, found)
	})

	t.Run(`permission matrix`, func(t *testing.T) {
		NewHandler()

		staffPermissions := Instance.GetPermissions(models.StaffRole)
		require.NotContains(t, staffPermissions[models.TimeModule], models.ManagePermission)
		require.Contains(t, staffPermissions[models.TimeModule], models.ViewPermission)

		adminPermissions := Instance.GetPermissions(models.AdminRole)
		require.Contains(t, adminPermissions[models.TimeModule], models.ManagePermission)
		require.Contains(t, adminPermissions[models.SettingsModule], models.EditPermission)
	})
}
