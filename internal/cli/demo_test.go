package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	runDemo(&buf)

	want := `s_array = [[1, 2, 3, 4, 5, 6], [4, 5, 6, 7, 8, 9], [7, 8, 9, 1, 2, 3]]
M = [[1, 2, 3], [4, 5, 6], [0, 0, 0]]
[1 2 3]
[4 5 6]
[5 7 9]

[2 4 6]
[8 10 12]
[10 14 18]
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("runDemo output mismatch (-want +got):\n%s", diff)
	}
}
