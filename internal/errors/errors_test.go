package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSensorOffline = New("sensor offline")

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrapf(WithStack(errSensorOffline), "check sensor %s", "GPS-1")

	assert.True(t, Is(err, errSensorOffline))
	assert.Equal(t, "check sensor GPS-1: sensor offline", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrapKeepsSentinel")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestAs(t *testing.T) {
	err := Wrap(&codeError{code: "SENSOR_NOT_GPS"}, "activate")

	var target *codeError
	assert.True(t, As(err, &target))
	assert.Equal(t, "SENSOR_NOT_GPS", target.code)
}
