package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_members/config"
)

func Test_NewHTTPClient__should_use_configured_timeout(t *testing.T) {
	client := NewHTTPClient(&config.AppConfig{
		Members: config.MembersConfig{RequestTimeout: 3 * time.Second},
	})

	assert.Equal(t, 3*time.Second, client.Timeout)
}
