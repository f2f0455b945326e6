package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hivewatch/internal/domain/repository"
	mockRepo "hivewatch/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txRepos is the set of repositories handed to transactional callbacks.
type txRepos struct {
	sensorRepo       *mockRepo.MockSensorRepository
	alertRepo        *mockRepo.MockAlertRepository
	notificationRepo *mockRepo.MockNotificationRepository
	membershipRepo   *mockRepo.MockMembershipRepository
}

// expectTransactions makes every Execute call run its callback against repos.
func expectTransactions(t *testing.T, txManager *mockRepo.MockTransactionManager, repos txRepos) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	if repos.sensorRepo != nil {
		factory.EXPECT().NewSensorRepository().Return(repos.sensorRepo).Maybe()
	}
	if repos.alertRepo != nil {
		factory.EXPECT().NewAlertRepository().Return(repos.alertRepo).Maybe()
	}
	if repos.notificationRepo != nil {
		factory.EXPECT().NewNotificationRepository().Return(repos.notificationRepo).Maybe()
	}
	if repos.membershipRepo != nil {
		factory.EXPECT().NewMembershipRepository().Return(repos.membershipRepo).Maybe()
	}

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func ptr[T any](v T) *T {
	return &v
}
