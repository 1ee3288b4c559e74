package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gwerrors "github.com/gatewayops/gwshift/pkg/errors"
)

func TestParseExport(t *testing.T) {
	t.Parallel()

	validExport := `{
  "services": [
    {
      "name": "svc-a",
      "protocol": "http",
      "host": "a.internal",
      "path": "/v1",
      "routes": [{"paths": ["/a"]}]
    },
    {
      "name": "svc-b",
      "protocol": "https",
      "host": "b.internal",
      "path": "/v2",
      "routes": []
    }
  ]
}`

	missingServices := `{"version": "3.4"}`

	wrongShape := `{"services": [{"routes": "not-an-array"}]}`

	notJSON := `services: []`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, export *Export, err error)
	}{
		{
			name:     "valid export is parsed",
			contents: validExport,
			assert: func(t *testing.T, export *Export, err error) {
				require.NoError(t, err)
				require.NotNil(t, export)
				require.Len(t, export.Services, 2)
				require.Equal(t, "svc-a", export.Services[0].Name)
				require.Equal(t, "/a", export.Services[0].ListenPath())
				require.Equal(t, "", export.Services[1].ListenPath())
			},
		},
		{
			name:     "missing services array fails schema validation",
			contents: missingServices,
			assert: func(t *testing.T, export *Export, err error) {
				require.Error(t, err)
				var parseErr *gwerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "malformed routes fail schema validation",
			contents: wrongShape,
			assert: func(t *testing.T, export *Export, err error) {
				require.Error(t, err)
				var parseErr *gwerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "non-JSON input returns parse error",
			contents: notJSON,
			assert: func(t *testing.T, export *Export, err error) {
				require.Error(t, err)
				var parseErr *gwerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempExport(t, tc.contents)
			export, err := ParseExport(path)
			tc.assert(t, export, err)
		})
	}
}

func TestParseExportMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseExport(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	var parseErr *gwerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestServiceListenPathFirstRouteFirstPath(t *testing.T) {
	t.Parallel()

	svc := Service{
		Routes: []Route{
			{Paths: []string{"/one", "/two"}},
			{Paths: []string{"/three"}},
		},
	}
	require.Equal(t, "/one", svc.ListenPath())
}

func writeTempExport(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
