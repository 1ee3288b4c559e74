package source

import (
	_ "embed"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	gwerrors "github.com/gatewayops/gwshift/pkg/errors"
)

//go:embed schema/export.schema.json
var exportSchema string

var (
	schemaOnce sync.Once
	schemaInst *jsonschema.Schema
)

func compiledSchema() *jsonschema.Schema {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("export.schema.json", strings.NewReader(exportSchema)); err != nil {
			panic(err)
		}
		schemaInst = compiler.MustCompile("export.schema.json")
	})
	return schemaInst
}

// ParseExport loads the source gateway's bulk export from disk, checks it
// against the embedded schema, and decodes it into the export model.
func ParseExport(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gwerrors.NewParseError(path, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, gwerrors.NewParseError(path, err)
	}

	if err := compiledSchema().Validate(raw); err != nil {
		return nil, gwerrors.NewParseError(path, err)
	}

	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, gwerrors.NewParseError(path, err)
	}

	return &export, nil
}
