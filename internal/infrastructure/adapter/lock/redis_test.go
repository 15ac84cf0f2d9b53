package lock

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTries(t *testing.T) {
	tests := []struct {
		name   string
		expiry time.Duration
		want   int
	}{
		{"Shorter than one poll", time.Millisecond, 1},
		{"Exactly one poll", DefaultPollInterval, 1},
		{"Spread over expiry", 10 * DefaultPollInterval, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tries(tt.expiry))
		})
	}
}

func TestErrString(t *testing.T) {
	assert.Equal(t, "", errString(nil))
	assert.Equal(t, "boom", errString(errors.New("boom")))
}

func TestKeyPrefix(t *testing.T) {
	assert.Equal(t, "photo:user-lock:device-1", KeyPrefix+"device-1")
}
