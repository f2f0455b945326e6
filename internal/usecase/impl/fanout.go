package impl

import (
	"context"

	"hivewatch/internal/domain/entity"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/errors"
	"hivewatch/internal/usecase"
)

// fanoutToMembers creates one notification per selected member of the request's company.
// It runs on whatever repositories it is given, so callers decide the transaction.
func fanoutToMembers(
	ctx context.Context,
	memberships repository.MembershipRepository,
	notifications repository.NotificationRepository,
	req usecase.FanoutRequest,
) (*usecase.FanoutResult, error) {
	members, err := memberships.FindMembersByCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list company members")
	}

	recipients := selectRecipients(members, req)
	if len(recipients) == 0 {
		return &usecase.FanoutResult{}, nil
	}

	created := make([]*entity.Notification, 0, len(recipients))
	for _, member := range recipients {
		created = append(created, &entity.Notification{
			Kind:           req.Kind,
			Title:          req.Title,
			Message:        req.Message,
			Date:           req.Date,
			UserID:         member.UserID,
			CompanyID:      req.CompanyID,
			HiveID:         req.HiveID,
			InterventionID: req.InterventionID,
		})
	}

	if err := notifications.BatchCreateNotifications(ctx, created); err != nil {
		return nil, errors.Wrap(err, "failed to create notifications")
	}

	return &usecase.FanoutResult{
		Notifications: created,
		Recipients:    recipients,
	}, nil
}

// selectRecipients applies the exclusion, role and email filters of a request.
func selectRecipients(members []*entity.Membership, req usecase.FanoutRequest) []*entity.Membership {
	selected := make([]*entity.Membership, 0, len(members))
	for _, member := range members {
		if req.ExcludeUserID != nil && member.UserID == *req.ExcludeUserID {
			continue
		}
		if len(req.Roles) > 0 && !req.Roles.Contains(member.Role) {
			continue
		}
		if req.RequireEmail && (member.User == nil || !member.User.HasEmail()) {
			continue
		}
		selected = append(selected, member)
	}

	return selected
}
