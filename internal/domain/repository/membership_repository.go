package repository

import (
	"context"

	"hivewatch/internal/domain/entity"
	"hivewatch/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for membership persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrMembershipNotFound is returned when a user does not belong to a company.
	ErrMembershipNotFound = errors.New("membership not found")
)

// MembershipRepository reads company memberships and users.
type MembershipRepository interface {
	// FindMembersByCompany lists the memberships of a company with their users loaded.
	FindMembersByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Membership, error)

	// FindMembership retrieves the membership of a user in a company.
	FindMembership(ctx context.Context, userID, companyID uuid.UUID) (*entity.Membership, error)

	// FindCompanyIDsWithMembers lists the distinct companies that have at least one membership.
	FindCompanyIDsWithMembers(ctx context.Context) ([]uuid.UUID, error)

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
