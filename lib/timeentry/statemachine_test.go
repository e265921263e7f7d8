package timeentryhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"staffhub-backend/models"
)

func TestCheckTransition(t *testing.T) {
	t.Run(`clock-out only from active approved`, func(t *testing.T) {
		require.Nil(t, checkTransition(models.EventClockOut, models.TimeEntryActive, models.ApprovalApproved))
		require.NotNil(t, checkTransition(models.EventClockOut, models.TimeEntryCompleted, models.ApprovalApproved))
		require.NotNil(t, checkTransition(models.EventClockOut, models.TimeEntryAutoClockedOut, models.ApprovalApproved))
		require.NotNil(t, checkTransition(models.EventClockOut, models.TimeEntryActive, models.ApprovalPending))
	})

	t.Run(`auto-clock-out mirrors clock-out`, func(t *testing.T) {
		require.Nil(t, checkTransition(models.EventAutoClockOut, models.TimeEntryActive, models.ApprovalApproved))
		require.NotNil(t, checkTransition(models.EventAutoClockOut, models.TimeEntryCompleted, models.ApprovalApproved))
	})

	t.Run(`self-edit needs a finished entry`, func(t *testing.T) {
		require.NotNil(t, checkTransition(models.EventSelfEdit, models.TimeEntryActive, models.ApprovalApproved))
		require.Nil(t, checkTransition(models.EventSelfEdit, models.TimeEntryCompleted, models.ApprovalApproved))
		require.Nil(t, checkTransition(models.EventSelfEdit, models.TimeEntryCompleted, models.ApprovalRejected))
		require.Nil(t, checkTransition(models.EventSelfEdit, models.TimeEntryAutoClockedOut, models.ApprovalPending))
	})

	t.Run(`admin edit allowed in any state`, func(t *testing.T) {
		for _, status := range []models.TimeEntryStatus{models.TimeEntryActive, models.TimeEntryCompleted, models.TimeEntryAutoClockedOut} {
			for _, approval := range []models.ApprovalStatus{models.ApprovalApproved, models.ApprovalPending, models.ApprovalRejected} {
				require.Nil(t, checkTransition(models.EventAdminEdit, status, approval))
			}
		}
	})

	t.Run(`review events need a pending finished entry`, func(t *testing.T) {
		require.Nil(t, checkTransition(models.EventApproveEdit, models.TimeEntryCompleted, models.ApprovalPending))
		require.Nil(t, checkTransition(models.EventRejectEdit, models.TimeEntryAutoClockedOut, models.ApprovalPending))
		require.NotNil(t, checkTransition(models.EventApproveEdit, models.TimeEntryCompleted, models.ApprovalApproved))
		require.NotNil(t, checkTransition(models.EventRejectEdit, models.TimeEntryCompleted, models.ApprovalRejected))
		require.NotNil(t, checkTransition(models.EventApproveEdit, models.TimeEntryActive, models.ApprovalPending))
	})

	t.Run(`unknown event rejected`, func(t *testing.T) {
		require.NotNil(t, checkTransition(models.TimeEntryEvent("bogus"), models.TimeEntryActive, models.ApprovalApproved))
	})

	t.Run(`rejections carry the transition sentinel`, func(t *testing.T) {
		err := checkTransition(models.EventApproveEdit, models.TimeEntryCompleted, models.ApprovalApproved)
		require.ErrorIs(t, err, ErrInvalidTransition)
		err = checkTransition(models.TimeEntryEvent("bogus"), models.TimeEntryActive, models.ApprovalApproved)
		require.ErrorIs(t, err, ErrInvalidTransition)
	})
}
