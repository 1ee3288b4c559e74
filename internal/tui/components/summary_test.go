package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummaryViewStates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data SummaryData
		want []string
	}{
		{
			name: "unfinished run renders nothing",
			data: SummaryData{Total: 2},
			want: nil,
		},
		{
			name: "clean completion",
			data: SummaryData{Total: 2, Imported: 1, Skipped: 1, Finished: true},
			want: []string{"Completed", "1 imported, 1 skipped, 0 failed (of 2)"},
		},
		{
			name: "completion with failures lists titles",
			data: SummaryData{Total: 3, Imported: 2, Failed: 1, FailedTitles: []string{"svc-c"}, Finished: true},
			want: []string{"Completed with failures", "failed: svc-c"},
		},
		{
			name: "abort",
			data: SummaryData{Total: 3, Aborted: true},
			want: []string{"aborted", "unreachable"},
		},
		{
			name: "cancelled",
			data: SummaryData{Total: 3, Cancelled: true},
			want: []string{"Cancelled"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			view := NewSummary(tc.data).View()
			if tc.want == nil {
				require.Empty(t, view)
				return
			}
			for _, fragment := range tc.want {
				require.Contains(t, view, fragment)
			}
		})
	}
}
