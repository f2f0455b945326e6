package usecase

import (
	"context"
	"time"

	"hivewatch/internal/domain/entity"

	"github.com/google/uuid"
)

// FanoutRequest describes one notification delivered to the members of a company.
type FanoutRequest struct {
	CompanyID      uuid.UUID
	Kind           entity.NotificationKind
	Title          string
	Message        string
	Date           time.Time
	HiveID         *uuid.UUID
	InterventionID *uuid.UUID

	// ExcludeUserID skips one member, usually the author of the triggering event.
	ExcludeUserID *uuid.UUID
	// Roles restricts recipients to these roles when not empty.
	Roles entity.Roles
	// RequireEmail skips members without an email address.
	RequireEmail bool
}

// FanoutResult lists what a fan-out created.
type FanoutResult struct {
	Notifications []*entity.Notification
	Recipients    []*entity.Membership
	// Skipped is set when the dispatch key had already been used.
	Skipped bool
}

// Created returns the number of notifications created.
func (r *FanoutResult) Created() int {
	if r == nil {
		return 0
	}

	return len(r.Notifications)
}

// FanoutUsecase creates one notification per recipient of a company.
type FanoutUsecase interface {
	// Fanout creates the notifications without deduplication.
	Fanout(ctx context.Context, req FanoutRequest) (*FanoutResult, error)

	// FanoutOnce creates the notifications unless the key was already dispatched
	// or a notification of the same kind and scope is already dated that day.
	FanoutOnce(ctx context.Context, key entity.DispatchKey, req FanoutRequest) (*FanoutResult, error)
}

// DailyRunReport counts the notifications created by one daily run.
type DailyRunReport struct {
	Date               string `json:"date"`
	VisitReminders     int    `json:"visitReminders"`
	TreatmentReminders int    `json:"treatmentReminders"`
	Seasonal           int    `json:"seasonal"`
	SanitaryAlerts     int    `json:"sanitaryAlerts"`
	Created            int    `json:"created"`
	// Failures counts the units of work that failed and were skipped.
	Failures int `json:"failures"`
}

// RuleEngineUsecase runs the daily notification rules.
type RuleEngineUsecase interface {
	// RunDaily evaluates every rule for the calendar date of today.
	RunDaily(ctx context.Context, today time.Time) (*DailyRunReport, error)
}

// InterventionCreated is the event raised when an intervention is inserted.
type InterventionCreated struct {
	InterventionID uuid.UUID
	HiveID         uuid.UUID
	ActorID        uuid.UUID
	Kind           entity.InterventionKind
}

// InterventionNotifierUsecase notifies the team about new interventions.
type InterventionNotifierUsecase interface {
	// NotifyInterventionCreated returns the number of notifications created.
	NotifyInterventionCreated(ctx context.Context, event InterventionCreated) (int, error)
}

// PushReport summarizes a push dispatch.
type PushReport struct {
	Devices     int
	Sent        int
	Failed      int
	Deactivated int
}

// PushDispatcher forwards created notifications to the recipients' devices.
type PushDispatcher interface {
	// Dispatch is best effort and never fails the caller.
	Dispatch(ctx context.Context, notifications []*entity.Notification) PushReport
}
