package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/2beens/grunga/pkg"

	"github.com/BurntSushi/toml"
)

const stateFileName = ".grungactl.toml"

// State is what grungactl remembers between runs.
type State struct {
	DemoUser string `toml:"demo_user"`
	APIURL   string `toml:"api_url,omitempty"`
}

func DefaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return stateFileName
	}
	return filepath.Join(home, stateFileName)
}

// LoadState reads the state file. A missing file is an empty state.
func LoadState(path string) (State, error) {
	exists, err := pkg.PathExists(path, false)
	if err != nil {
		return State{}, fmt.Errorf("check state file: %w", err)
	}
	if !exists {
		return State{}, nil
	}

	var st State
	if _, err := toml.DecodeFile(path, &st); err != nil {
		return State{}, fmt.Errorf("decode state file %s: %w", path, err)
	}
	return st, nil
}

func SaveState(path string, st State) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open state file %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(st); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode state: %w", err)
	}
	return f.Close()
}
