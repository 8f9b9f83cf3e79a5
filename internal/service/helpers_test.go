package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/edusga/sga-admin/internal/api"
	"github.com/edusga/sga-admin/internal/auth"
	"github.com/edusga/sga-admin/internal/config"
	"github.com/edusga/sga-admin/internal/validator"
)

func newClient(t *testing.T, baseURL string) *api.Client {
	t.Helper()
	validator.Setup()
	cfg := &config.Config{
		APIBaseURL:  baseURL,
		HTTPTimeout: 5 * time.Second,
		TokenFile:   filepath.Join(t.TempDir(), "token"),
	}
	session := auth.NewSession(cfg.TokenFile, zerolog.Nop())
	return api.NewClient(cfg, session, zerolog.Nop())
}
