package impl

import (
	"context"
	"log/slog"

	deliverycontext "hivewatch/internal/delivery/context"
	"hivewatch/internal/domain/entity"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type pushDispatcher struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// PushDispatcherParams holds dependencies for the push dispatcher.
type PushDispatcherParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewPushDispatcher creates the FCM dispatcher for created notifications.
func NewPushDispatcher(params PushDispatcherParams) usecase.PushDispatcher {
	return &pushDispatcher{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (d *pushDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// pushTarget is a device token with the notification addressed to its owner.
type pushTarget struct {
	token        string
	notification *entity.Notification
}

// Dispatch sends every notification to the active devices of its recipient.
// Notifications sharing the same content are multicast together in batches.
func (d *pushDispatcher) Dispatch(ctx context.Context, notifications []*entity.Notification) usecase.PushReport {
	var report usecase.PushReport
	if d.notificationSvc == nil || len(notifications) == 0 {
		return report
	}

	userIDs := make([]uuid.UUID, 0, len(notifications))
	seen := make(map[uuid.UUID]struct{}, len(notifications))
	for _, n := range notifications {
		if _, ok := seen[n.UserID]; ok {
			continue
		}
		seen[n.UserID] = struct{}{}
		userIDs = append(userIDs, n.UserID)
	}

	devices, err := d.deviceRepo.FindActiveDevicesForUsers(ctx, userIDs)
	if err != nil {
		d.log(ctx).Warn("[Push] Failed to load devices", slog.Any("error", err))

		return report
	}
	if len(devices) == 0 {
		return report
	}

	byUser := make(map[uuid.UUID][]string, len(devices))
	for _, device := range devices {
		if device.FCMToken == "" {
			continue
		}
		byUser[device.UserID] = append(byUser[device.UserID], device.FCMToken)
	}

	// Group targets by message so identical notifications share a multicast.
	groups := make(map[string][]pushTarget)
	order := make([]string, 0)
	for _, n := range notifications {
		key := n.Kind.String() + "\x00" + n.Title + "\x00" + n.Message
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		for _, token := range byUser[n.UserID] {
			groups[key] = append(groups[key], pushTarget{token: token, notification: n})
		}
	}

	var invalid []string
	for _, key := range order {
		targets := groups[key]
		report.Devices += len(targets)

		for start := 0; start < len(targets); start += service.MaxPushBatchSize {
			batch := targets[start:min(start+service.MaxPushBatchSize, len(targets))]
			result, err := d.send(ctx, batch)
			if err != nil {
				if errors.Is(err, service.ErrPushDisabled) {
					return report
				}
				d.log(ctx).Warn("[Push] Failed to send batch",
					slog.Int("batch_size", len(batch)),
					slog.Any("error", err),
				)
				report.Failed += len(batch)

				continue
			}
			report.Sent += result.SuccessCount
			report.Failed += result.FailureCount
			invalid = append(invalid, result.InvalidTokens...)
		}
	}

	if len(invalid) > 0 {
		deactivated, err := d.deviceRepo.DeactivateDevicesByToken(ctx, invalid)
		if err != nil {
			d.log(ctx).Warn("[Push] Failed to deactivate invalid devices", slog.Any("error", err))
		}
		report.Deactivated = int(deactivated)
	}

	d.log(ctx).Info("[Push] Notifications pushed",
		slog.Int("devices", report.Devices),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("deactivated", report.Deactivated),
	)

	return report
}

func (d *pushDispatcher) send(ctx context.Context, batch []pushTarget) (*service.PushResult, error) {
	first := batch[0].notification
	tokens := make([]string, 0, len(batch))
	for _, target := range batch {
		tokens = append(tokens, target.token)
	}

	data := map[string]string{
		"kind": first.Kind.String(),
	}
	// The notification id differs per recipient; a single multicast carries it only when unambiguous.
	if len(batch) == 1 || sameNotification(batch) {
		data["notification_id"] = first.ID.String()
	}
	if first.HiveID != nil {
		data["hive_id"] = first.HiveID.String()
	}

	return d.notificationSvc.SendBatchNotification(ctx, tokens, service.PushMessage{
		Title: first.Title,
		Body:  first.Message,
		Data:  data,
	})
}

func sameNotification(batch []pushTarget) bool {
	for _, target := range batch[1:] {
		if target.notification != batch[0].notification {
			return false
		}
	}

	return true
}
