package service

import (
	"context"

	"hivewatch/internal/errors"
)

// ErrEmailDisabled is returned when no email transport is configured.
var ErrEmailDisabled = errors.New("email transport disabled")

// EmailMessage is a single HTML email.
type EmailMessage struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
}

// EmailSender delivers emails.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// GPSAlertEmail carries the values of the GPS displacement summary email.
type GPSAlertEmail struct {
	To               string
	RecipientName    string
	SensorIdentifier string
	DistanceMeters   float64
	ThresholdMeters  float64
	HiveCode         string
}

// AlertMailer renders and sends alert emails.
type AlertMailer interface {
	SendGPSAlert(ctx context.Context, mail GPSAlertEmail) error
}
