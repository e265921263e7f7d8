package models

// TimeEntryStatus is the lifecycle status of a time entry: active while
// the user is clocked in, completed after a normal clock-out, or
// auto-clocked-out when the reconciliation sweep forced the clock-out.
type TimeEntryStatus string

const (
	TimeEntryActive         TimeEntryStatus = "active"
	TimeEntryCompleted      TimeEntryStatus = "completed"
	TimeEntryAutoClockedOut TimeEntryStatus = "auto-clocked-out"
)

// ApprovalStatus tracks the edit-approval workflow on a time entry.
// Entries start approved; a self-edit by a non-admin moves them to
// pending until an admin approves or rejects.
type ApprovalStatus string

const (
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalRejected ApprovalStatus = "rejected"
)

// TimeEntryEvent names a transition attempt against the entry lifecycle.
type TimeEntryEvent string

const (
	EventClockOut     TimeEntryEvent = "clock-out"
	EventAutoClockOut TimeEntryEvent = "auto-clock-out"
	EventSelfEdit     TimeEntryEvent = "self-edit"
	EventAdminEdit    TimeEntryEvent = "admin-edit"
	EventApproveEdit  TimeEntryEvent = "approve-edit"
	EventRejectEdit   TimeEntryEvent = "reject-edit"
)
