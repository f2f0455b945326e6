package impl

import (
	"math"

	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
)

// mapRepositoryError converts repository sentinels to the matching domain errors.
func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrSensorNotFound):
		return errors.Wrap(domainerrors.ErrSensorNotFound, err.Error())
	case errors.Is(err, repository.ErrHiveNotFound):
		return errors.Wrap(domainerrors.ErrHiveNotFound, err.Error())
	case errors.Is(err, repository.ErrApiaryNotFound):
		return errors.Wrap(domainerrors.ErrApiaryNotFound, err.Error())
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, err.Error())
	case errors.Is(err, repository.ErrMembershipNotFound):
		return errors.Wrap(domainerrors.ErrForbidden, err.Error())
	default:
		return errors.WithStack(err)
	}
}

// mapProviderError converts position provider failures to a 502 domain error.
func mapProviderError(err error) error {
	var providerErr *service.ProviderError
	if errors.As(err, &providerErr) {
		return errors.Wrap(domainerrors.ErrPositionProviderFailed.WithDetails(providerErr.Error()), "position provider failed")
	}

	return errors.Wrap(domainerrors.ErrPositionProviderFailed.WithDetails(err.Error()), "position provider failed")
}

// validateThreshold accepts a nil override or a finite, strictly positive value.
func validateThreshold(threshold *float64) error {
	if threshold == nil {
		return nil
	}
	if math.IsNaN(*threshold) || math.IsInf(*threshold, 0) || *threshold <= 0 {
		return errors.WithStack(domainerrors.ErrInvalidThreshold)
	}

	return nil
}
