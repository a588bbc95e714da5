package process_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.faultline.dev/faultline/internal/adapters/process"
	"go.faultline.dev/faultline/internal/core/domain"
)

func TestValidator_Validate_OK(t *testing.T) {
	v := process.NewValidator()

	activity := &domain.Activity{
		Name:     "list-files",
		Provider: domain.ProcessProvider{Path: "/bin/sh"},
	}

	require.NoError(t, v.Validate(activity))
}

func TestValidator_Validate_EmptyPath(t *testing.T) {
	v := process.NewValidator()

	err := v.Validate(&domain.Activity{Name: "no-path"})
	require.ErrorIs(t, err, domain.ErrInvalidActivity)
	require.Contains(t, err.Error(), "must have a path")
}

func TestValidator_Validate_PathNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	v := process.NewValidator()

	err := v.Validate(&domain.Activity{
		Name:     "missing-tool",
		Provider: domain.ProcessProvider{Path: "no-such-command-xyz"},
	})
	require.ErrorIs(t, err, domain.ErrInvalidActivity)
	require.Contains(t, err.Error(), "cannot be found")
	require.Contains(t, err.Error(), "missing-tool")
}

func TestValidator_Validate_NoAccessPermission(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locked")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o600))

	v := process.NewValidator()
	err := v.Validate(&domain.Activity{
		Name:     "locked-tool",
		Provider: domain.ProcessProvider{Path: path},
	})
	require.ErrorIs(t, err, domain.ErrInvalidActivity)
	require.Contains(t, err.Error(), "no access permission")
	require.Contains(t, err.Error(), path)
	require.Contains(t, err.Error(), "locked-tool")
}

func TestValidator_Validate_Idempotent(t *testing.T) {
	v := process.NewValidator()
	activity := &domain.Activity{
		Name:     "repeat",
		Provider: domain.ProcessProvider{Path: "/bin/sh"},
	}

	for range 5 {
		require.NoError(t, v.Validate(activity))
	}

	invalid := &domain.Activity{Name: "repeat-invalid"}
	first := v.Validate(invalid)
	second := v.Validate(invalid)
	require.Error(t, first)
	require.Error(t, second)
	require.Equal(t, first.Error(), second.Error())
}
