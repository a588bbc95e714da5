package process

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.faultline.dev/faultline/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func TestFlatten_OrderPreservingAndDropping(t *testing.T) {
	args := domain.Arguments{
		{Flag: "--flag", Value: strPtr("")},
		{Flag: "--name", Value: strPtr("x")},
		{Flag: "--skip", Value: nil},
	}

	got := flatten(args)

	// The empty value keeps the bare flag, the nil value omits the pair.
	require.Equal(t, []string{"--flag", "--name", "x"}, got)
}

func TestFlatten_KeepsDeclarationOrder(t *testing.T) {
	args := domain.Arguments{
		{Flag: "-c", Value: strPtr("3")},
		{Flag: "-W", Value: strPtr("1")},
		{Flag: "localhost", Value: strPtr("")},
	}

	require.Equal(t, []string{"-c", "3", "-W", "1", "localhost"}, flatten(args))
}

func TestFlatten_EmptyFlagTokenDropped(t *testing.T) {
	args := domain.Arguments{
		{Flag: "", Value: strPtr("positional")},
	}

	require.Equal(t, []string{"positional"}, flatten(args))
}

func TestFlatten_Empty(t *testing.T) {
	require.Empty(t, flatten(nil))
	require.Empty(t, flatten(domain.Arguments{}))
}

func TestResolvePath_DirectPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o700))

	resolved, err := resolvePath(path)
	require.NoError(t, err)
	require.Equal(t, path, resolved)
}

func TestResolvePath_DirectPathNotExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o600))

	resolved, err := resolvePath(path)
	require.ErrorIs(t, err, os.ErrPermission)
	require.Equal(t, path, resolved)
}

func TestResolvePath_DirectPathMissing(t *testing.T) {
	_, err := resolvePath(filepath.Join(t.TempDir(), "no-such-tool"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolvePath_SearchesPATH(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my-probe")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o700))
	t.Setenv("PATH", dir)

	resolved, err := resolvePath("my-probe")
	require.NoError(t, err)
	require.Equal(t, path, resolved)
}

func TestResolvePath_PrefersLaterExecutableCandidate(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(first, "tool"), []byte("data"), 0o600))
	executable := filepath.Join(second, "tool")
	require.NoError(t, os.WriteFile(executable, []byte("#!/bin/sh\nexit 0\n"), 0o700))
	t.Setenv("PATH", first+string(os.PathListSeparator)+second)

	resolved, err := resolvePath("tool")
	require.NoError(t, err)
	require.Equal(t, executable, resolved)
}

func TestResolvePath_NotFoundAnywhere(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := resolvePath("definitely-not-a-command-xyz")
	require.ErrorIs(t, err, os.ErrNotExist)
	require.False(t, errors.Is(err, os.ErrPermission))
}
