package utils

import (
	"net/http"

	"github.com/unicsmcr/hs_members/config"
)

// NewHTTPClient creates the client used to talk to the members API
func NewHTTPClient(cfg *config.AppConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Members.RequestTimeout,
	}
}
