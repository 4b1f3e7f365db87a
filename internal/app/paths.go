package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvHome overrides the default home directory.
const EnvHome = "UNITCONV_HOME"

// Paths holds all resolved filesystem paths for the unitconv home directory.
type Paths struct {
	Root    string // ~/.unitconv/
	Config  string // ~/.unitconv/config.yaml
	History string // ~/.unitconv/history.db
}

// NewPaths constructs all resolved paths from a home directory.
func NewPaths(home string) *Paths {
	return &Paths{
		Root:    home,
		Config:  filepath.Join(home, "config.yaml"),
		History: filepath.Join(home, "history.db"),
	}
}

// DefaultHome returns $UNITCONV_HOME, or ~/.unitconv when unset.
func DefaultHome() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	user, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(user, ".unitconv"), nil
}

// EnsureDirs creates the home directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.Root, 0755)
}
