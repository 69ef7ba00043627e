package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("VEHICLE_CARE_TEST_KEY", "set")
	assert.Equal(t, "set", envOr("VEHICLE_CARE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", envOr("VEHICLE_CARE_TEST_KEY_MISSING", "fallback"))
}
