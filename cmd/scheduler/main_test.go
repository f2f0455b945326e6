package main

import (
	"testing"
	"time"

	"hivewatch/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobEvent(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	tests := []struct {
		name    string
		job     string
		date    string
		wantErr bool
		wantRun *time.Time
	}{
		{name: "daily without date", job: service.JobDailyNotifications},
		{name: "sweep", job: service.JobGPSSweep},
		{
			name:    "daily with date",
			job:     service.JobDailyNotifications,
			date:    "2026-03-01",
			wantRun: func() *time.Time { d := time.Date(2026, 3, 1, 0, 0, 0, 0, paris); return &d }(),
		},
		{name: "unknown job", job: "compact_hives", wantErr: true},
		{name: "date on sweep", job: service.JobGPSSweep, date: "2026-03-01", wantErr: true},
		{name: "malformed date", job: service.JobDailyNotifications, date: "01/03/2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := newJobEvent(tt.job, tt.date, paris)

			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.job, event.Job)
			assert.NotEmpty(t, event.RequestID)
			if tt.wantRun == nil {
				assert.Nil(t, event.RunDate)
			} else {
				require.NotNil(t, event.RunDate)
				assert.True(t, tt.wantRun.Equal(*event.RunDate))
			}
		})
	}
}
