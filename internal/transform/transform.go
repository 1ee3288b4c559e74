package transform

import (
	"github.com/gatewayops/gwshift/internal/source"
	gwerrors "github.com/gatewayops/gwshift/pkg/errors"
)

// Failure records a source service that could not be mapped. Recoverable:
// the record is skipped and counted as failed, the rest of the batch
// proceeds.
type Failure struct {
	Index int
	Name  string
	Err   error
}

// Result holds the ordered definitions plus the per-record failures of one
// transformation pass.
type Result struct {
	Definitions []APIDefinition
	Failures    []Failure
}

// Apply maps every source service to an API definition, preserving input
// order. Pure: no I/O, deterministic for the same export.
//
// A service with an empty name fails transformation. A name that collides
// with an earlier service also fails; the first occurrence wins rather than
// letting a later record silently overwrite its artifact. A service without
// routes still produces a definition, with no listen path; the target API
// rejects it at import time.
func Apply(export *source.Export) Result {
	var res Result
	if export == nil {
		return res
	}

	seen := make(map[string]struct{}, len(export.Services))

	for i, svc := range export.Services {
		if svc.Name == "" {
			res.Failures = append(res.Failures, Failure{
				Index: i,
				Err:   gwerrors.NewTransformError(i, "", gwerrors.ErrMissingName),
			})
			continue
		}

		if _, dup := seen[svc.Name]; dup {
			res.Failures = append(res.Failures, Failure{
				Index: i,
				Name:  svc.Name,
				Err:   gwerrors.NewTransformError(i, svc.Name, gwerrors.ErrDuplicateTitle),
			})
			continue
		}
		seen[svc.Name] = struct{}{}

		res.Definitions = append(res.Definitions, APIDefinition{
			Title:   svc.Name,
			Version: DefaultVersion,
			// Upstream fields are trusted verbatim; no slash deduplication
			// or URL validation.
			UpstreamURL: svc.Protocol + "://" + svc.Host + svc.Path,
			ListenPath:  svc.ListenPath(),
			Active:      true,
			Internal:    false,
		})
	}

	return res
}
