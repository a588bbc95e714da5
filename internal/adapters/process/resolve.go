package process

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// resolvePath locates the executable behind a process provider path,
// following the platform convention: names containing a path separator are
// checked directly, bare names are searched in the directories of PATH.
//
// It reports the two failure modes validation distinguishes:
//   - (_, os.ErrNotExist) when no candidate file exists at all;
//   - (path, os.ErrPermission) when a candidate exists but the current user
//     may not execute it. The resolved candidate is returned alongside the
//     error so callers can name it.
func resolvePath(name string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) || filepath.IsAbs(name) {
		return checkCandidate(name)
	}

	found := ""
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			// Unix shell semantics: an empty PATH element means ".".
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		resolved, err := checkCandidate(candidate)
		if err == nil {
			return resolved, nil
		}
		if errors.Is(err, os.ErrPermission) && found == "" {
			found = resolved
		}
	}

	if found != "" {
		return found, os.ErrPermission
	}
	return "", os.ErrNotExist
}

func checkCandidate(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return "", os.ErrNotExist
	}
	if fi.Mode()&0o111 == 0 {
		return path, os.ErrPermission
	}
	return path, nil
}
