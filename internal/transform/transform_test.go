package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gatewayops/gwshift/internal/source"
	gwerrors "github.com/gatewayops/gwshift/pkg/errors"
)

func TestApplyMapsServices(t *testing.T) {
	t.Parallel()

	export := &source.Export{
		Services: []source.Service{
			{Name: "svc-a", Protocol: "http", Host: "a.internal", Path: "/v1", Routes: []source.Route{{Paths: []string{"/a"}}}},
			{Name: "svc-b", Protocol: "https", Host: "b.internal", Path: "/v2", Routes: []source.Route{{Paths: []string{"/b"}}}},
		},
	}

	res := Apply(export)
	require.Empty(t, res.Failures)
	require.Len(t, res.Definitions, 2)

	first := res.Definitions[0]
	require.Equal(t, "svc-a", first.Title)
	require.Equal(t, DefaultVersion, first.Version)
	require.Equal(t, "http://a.internal/v1", first.UpstreamURL)
	require.Equal(t, "/a", first.ListenPath)
	require.True(t, first.Active)
	require.False(t, first.Internal)

	second := res.Definitions[1]
	require.Equal(t, "svc-b", second.Title)
	require.Equal(t, "https://b.internal/v2", second.UpstreamURL)
	require.Equal(t, "/b", second.ListenPath)
}

func TestApplyPreservesInputOrder(t *testing.T) {
	t.Parallel()

	export := &source.Export{
		Services: []source.Service{
			{Name: "charlie", Protocol: "http", Host: "c", Routes: []source.Route{{Paths: []string{"/c"}}}},
			{Name: "alpha", Protocol: "http", Host: "a", Routes: []source.Route{{Paths: []string{"/a"}}}},
			{Name: "bravo", Protocol: "http", Host: "b", Routes: []source.Route{{Paths: []string{"/b"}}}},
		},
	}

	res := Apply(export)
	require.Len(t, res.Definitions, 3)
	require.Equal(t, "charlie", res.Definitions[0].Title)
	require.Equal(t, "alpha", res.Definitions[1].Title)
	require.Equal(t, "bravo", res.Definitions[2].Title)
}

func TestApplyUpstreamURLIsVerbatim(t *testing.T) {
	t.Parallel()

	// Trailing and leading slashes are not deduplicated.
	export := &source.Export{
		Services: []source.Service{
			{Name: "svc", Protocol: "http", Host: "h/", Path: "/p", Routes: []source.Route{{Paths: []string{"/x"}}}},
		},
	}

	res := Apply(export)
	require.Len(t, res.Definitions, 1)
	require.Equal(t, "http://h//p", res.Definitions[0].UpstreamURL)
}

func TestApplyEmptyNameFailsRecord(t *testing.T) {
	t.Parallel()

	export := &source.Export{
		Services: []source.Service{
			{Name: "", Protocol: "http", Host: "x", Routes: []source.Route{{Paths: []string{"/x"}}}},
			{Name: "svc-b", Protocol: "http", Host: "b", Routes: []source.Route{{Paths: []string{"/b"}}}},
		},
	}

	res := Apply(export)
	require.Len(t, res.Definitions, 1)
	require.Equal(t, "svc-b", res.Definitions[0].Title)

	require.Len(t, res.Failures, 1)
	require.Equal(t, 0, res.Failures[0].Index)
	require.ErrorIs(t, res.Failures[0].Err, gwerrors.ErrMissingName)
}

func TestApplyServiceWithoutRoutesStillProduced(t *testing.T) {
	t.Parallel()

	export := &source.Export{
		Services: []source.Service{
			{Name: "routeless", Protocol: "http", Host: "r.internal", Path: "/v1"},
		},
	}

	res := Apply(export)
	require.Empty(t, res.Failures)
	require.Len(t, res.Definitions, 1)
	require.Equal(t, "", res.Definitions[0].ListenPath)
}

func TestApplyOnlyFirstRouteFirstPath(t *testing.T) {
	t.Parallel()

	export := &source.Export{
		Services: []source.Service{
			{
				Name:     "multi",
				Protocol: "http",
				Host:     "m",
				Routes: []source.Route{
					{Paths: []string{"/first", "/second"}},
					{Paths: []string{"/third"}},
				},
			},
		},
	}

	res := Apply(export)
	require.Len(t, res.Definitions, 1)
	require.Equal(t, "/first", res.Definitions[0].ListenPath)
}

func TestApplyDuplicateTitleFirstWins(t *testing.T) {
	t.Parallel()

	export := &source.Export{
		Services: []source.Service{
			{Name: "svc-a", Protocol: "http", Host: "one", Routes: []source.Route{{Paths: []string{"/one"}}}},
			{Name: "svc-a", Protocol: "http", Host: "two", Routes: []source.Route{{Paths: []string{"/two"}}}},
		},
	}

	res := Apply(export)
	require.Len(t, res.Definitions, 1)
	require.Equal(t, "http://one", res.Definitions[0].UpstreamURL)

	require.Len(t, res.Failures, 1)
	require.Equal(t, 1, res.Failures[0].Index)
	require.Equal(t, "svc-a", res.Failures[0].Name)
	require.ErrorIs(t, res.Failures[0].Err, gwerrors.ErrDuplicateTitle)
}

func TestApplyNilExport(t *testing.T) {
	t.Parallel()

	res := Apply(nil)
	require.Empty(t, res.Definitions)
	require.Empty(t, res.Failures)
}
