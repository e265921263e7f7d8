package timeentryhandler

import (
	"github.com/pkg/errors"

	"staffhub-backend/models"
)

// entryState is the pair of lifecycle status and approval status a
// transition is checked against. Locked entries are handled before the
// table: the lock rejects everything except a solo unlock.
type entryState struct {
	Status   models.TimeEntryStatus
	Approval models.ApprovalStatus
}

var allowedTransitions = map[models.TimeEntryEvent]map[entryState]bool{
	models.EventClockOut: {
		{models.TimeEntryActive, models.ApprovalApproved}: true,
	},
	models.EventAutoClockOut: {
		{models.TimeEntryActive, models.ApprovalApproved}: true,
	},
	models.EventAdminEdit: {
		{models.TimeEntryActive, models.ApprovalApproved}:          true,
		{models.TimeEntryActive, models.ApprovalPending}:           true,
		{models.TimeEntryActive, models.ApprovalRejected}:          true,
		{models.TimeEntryCompleted, models.ApprovalApproved}:       true,
		{models.TimeEntryCompleted, models.ApprovalPending}:        true,
		{models.TimeEntryCompleted, models.ApprovalRejected}:       true,
		{models.TimeEntryAutoClockedOut, models.ApprovalApproved}:  true,
		{models.TimeEntryAutoClockedOut, models.ApprovalPending}:   true,
		{models.TimeEntryAutoClockedOut, models.ApprovalRejected}:  true,
	},
	models.EventSelfEdit: {
		{models.TimeEntryCompleted, models.ApprovalApproved}:      true,
		{models.TimeEntryCompleted, models.ApprovalPending}:       true,
		{models.TimeEntryCompleted, models.ApprovalRejected}:      true,
		{models.TimeEntryAutoClockedOut, models.ApprovalApproved}: true,
		{models.TimeEntryAutoClockedOut, models.ApprovalPending}:  true,
		{models.TimeEntryAutoClockedOut, models.ApprovalRejected}: true,
	},
	models.EventApproveEdit: {
		{models.TimeEntryCompleted, models.ApprovalPending}:      true,
		{models.TimeEntryAutoClockedOut, models.ApprovalPending}: true,
	},
	models.EventRejectEdit: {
		{models.TimeEntryCompleted, models.ApprovalPending}:      true,
		{models.TimeEntryAutoClockedOut, models.ApprovalPending}: true,
	},
}

// ErrInvalidTransition marks an event the entry's current state does
// not permit. Callers can rely on it staying a client error.
var ErrInvalidTransition = errors.New("transition not allowed")

// checkTransition rejects events the current entry state does not
// permit, so every lifecycle rule lives in one table instead of being
// scattered over the handlers.
func checkTransition(event models.TimeEntryEvent, status models.TimeEntryStatus, approval models.ApprovalStatus) error {
	states, ok := allowedTransitions[event]
	if !ok {
		return errors.Wrapf(ErrInvalidTransition, "unknown time entry event (%v)", event)
	}
	if !states[entryState{Status: status, Approval: approval}] {
		return errors.Wrapf(ErrInvalidTransition, "%v is not allowed on a %v entry with approval status %v", event, status, approval)
	}
	return nil
}
