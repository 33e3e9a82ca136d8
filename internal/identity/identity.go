// Package identity bootstraps the per-installation user id.
//
// The id is generated once, persisted next to the rest of the local state,
// and treated as an opaque stable identifier in every remote call.
package identity

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	idPrefix  = "user_"
	suffixLen = 9
	fileName  = "user_id"

	dirPermission  = 0o700
	filePermission = 0o600
)

// Bootstrap returns the installation's user id, creating and persisting one
// on first run. The id format is "user_" plus a random base-36 suffix.
func Bootstrap(stateDir string) (string, error) {
	path := filepath.Join(stateDir, fileName)

	raw, err := os.ReadFile(path)
	if err == nil {
		id := strings.TrimSpace(string(raw))
		if strings.HasPrefix(id, idPrefix) && len(id) > len(idPrefix) {
			return id, nil
		}
		// Fall through and regenerate on a corrupt file.
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read identity: %w", err)
	}

	id := newID()
	if err := os.MkdirAll(stateDir, dirPermission); err != nil {
		return "", fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), filePermission); err != nil {
		return "", fmt.Errorf("persist identity: %w", err)
	}
	return id, nil
}

// newID derives a base-36 suffix from fresh uuid entropy.
func newID() string {
	u := uuid.New()
	s := new(big.Int).SetBytes(u[:]).Text(36)
	return idPrefix + s[len(s)-suffixLen:]
}
