package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hivewatch/internal/errors"
)

func TestParseEnums(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) (string, error)
		raw     string
		wantErr bool
	}{
		{"sensor gps", wrap(ParseSensorKind), "GPS", false},
		{"sensor lower case", wrap(ParseSensorKind), "gps", true},
		{"alert displacement", wrap(ParseAlertKind), "DeplacementGPS", false},
		{"alert unknown", wrap(ParseAlertKind), "Incendie", true},
		{"notification seasonal", wrap(ParseNotificationKind), "Saisonnier", false},
		{"notification empty", wrap(ParseNotificationKind), "", true},
		{"hive sick", wrap(ParseHiveStatus), "Malade", false},
		{"hive english", wrap(ParseHiveStatus), "Sick", true},
		{"intervention treatment", wrap(ParseInterventionKind), "Traitement", false},
		{"role beekeeper", wrap(ParseRole), "Apiculteur", false},
		{"role unknown", wrap(ParseRole), "Owner", true},
		{"scope company", wrap(ParseScopeKind), "company", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownEnumValue))
				assert.Empty(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, got)
		})
	}
}

func wrap[T ~string](parse func(string) (T, error)) func(string) (string, error) {
	return func(s string) (string, error) {
		v, err := parse(s)

		return string(v), err
	}
}

func TestGeofenceState_Reference(t *testing.T) {
	lat, lng := 43.60, 3.80

	state := GeofenceState{ReferenceLatitude: &lat}
	assert.False(t, state.HasReference())
	_, ok := state.Reference()
	assert.False(t, ok)

	state.ReferenceLongitude = &lng
	p, ok := state.Reference()
	require.True(t, ok)
	assert.Equal(t, lng, p.Lon())
	assert.Equal(t, lat, p.Lat())
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Marie Curie", (&User{FirstName: "Marie", LastName: "Curie"}).DisplayName())
	assert.Equal(t, "Curie", (&User{LastName: "Curie"}).DisplayName())
	assert.False(t, (&User{Email: "  "}).HasEmail())
}
