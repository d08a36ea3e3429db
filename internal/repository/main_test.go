//go:build integration

package repository_test

import (
	"os"
	"testing"

	"hackathon-portal-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
