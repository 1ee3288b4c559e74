package split

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gatewayops/gwshift/internal/transform"
)

// CombinedFileName is the scratch artifact holding every definition.
const CombinedFileName = "apis.json"

// WriteArtifacts materializes the scratch artifacts under dir: one combined
// document with all definitions plus one file per unit. The artifacts exist
// for operator inspection only; the import reads the in-memory units.
func WriteArtifacts(dir string, defs []transform.APIDefinition, units []Unit) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	combined, err := json.MarshalIndent(defs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, CombinedFileName), combined, 0o644); err != nil {
		return err
	}

	for _, unit := range units {
		data, err := json.MarshalIndent(unit.Definition, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, unit.FileName), data, 0o644); err != nil {
			return err
		}
	}

	return nil
}
