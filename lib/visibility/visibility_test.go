package visibility

import (
	"testing"

	"github.com/stretchr/testify/require"

	"staffhub-backend/models"
	dbmodels "staffhub-backend/models/db"
)

func TestCanView(t *testing.T) {
	staff := &dbmodels.User{
		BaseModel: dbmodels.BaseModel{ID: "u-1"},
		Role:      models.StaffRole,
		Groups:    dbmodels.StringList{"night-shift"},
		Profile:   dbmodels.ProfileDetails{Programs: []string{"Mercy ICU"}},
	}
	admin := &dbmodels.User{
		BaseModel: dbmodels.BaseModel{ID: "a-1"},
		Role:      models.AdminRole,
	}

	t.Run(`everyone sees visibility all`, func(t *testing.T) {
		require.Equal(t, true, CanView(staff, models.VisibilityAll, nil, nil))
	})

	t.Run(`admin sees targeted content regardless`, func(t *testing.T) {
		require.Equal(t, true, CanView(admin, models.VisibilitySpecificUsers, []string{"someone-else"}, nil))
	})

	t.Run(`direct user target`, func(t *testing.T) {
		require.Equal(t, true, CanView(staff, models.VisibilitySpecificUsers, []string{"u-1"}, nil))
		require.Equal(t, false, CanView(staff, models.VisibilitySpecificUsers, []string{"u-2"}, nil))
	})

	t.Run(`directory group target`, func(t *testing.T) {
		require.Equal(t, true, CanView(staff, models.VisibilitySpecificUsers, nil, []string{"night-shift"}))
		require.Equal(t, false, CanView(staff, models.VisibilitySpecificUsers, nil, []string{"day-shift"}))
	})

	t.Run(`auto program group target`, func(t *testing.T) {
		require.Equal(t, true, CanView(staff, models.VisibilitySpecificUsers, nil,
			[]string{models.AutoProgramGroupPrefix + "Mercy ICU"}))
	})

	t.Run(`nil user sees nothing`, func(t *testing.T) {
		require.Equal(t, false, CanView(nil, models.VisibilityAll, nil, nil))
	})
}

func TestCanViewDraft(t *testing.T) {
	staff := &dbmodels.User{BaseModel: dbmodels.BaseModel{ID: "u-1"}, Role: models.StaffRole}
	admin := &dbmodels.User{BaseModel: dbmodels.BaseModel{ID: "a-1"}, Role: models.OwnerRole}

	require.Equal(t, true, CanViewDraft(staff, models.PublishPublished, "someone"))
	require.Equal(t, false, CanViewDraft(staff, models.PublishDraft, "someone"))
	require.Equal(t, true, CanViewDraft(staff, models.PublishDraft, "u-1"))
	require.Equal(t, true, CanViewDraft(admin, models.PublishDraft, "someone"))
	require.Equal(t, false, CanViewDraft(nil, models.PublishDraft, "someone"))
}
