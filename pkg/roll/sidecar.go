package roll

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadSidecar reads and parses a sidecar file.
func LoadSidecar(path string) (*Sidecar, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sidecar: %w", err)
	}

	s := &Sidecar{}
	if err := json.Unmarshal(bs, s); err != nil {
		return nil, fmt.Errorf("parse sidecar %q: %w", path, err)
	}

	return s, nil
}
