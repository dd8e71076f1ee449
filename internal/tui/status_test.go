package tui

import "testing"

func TestFmtElapsedCompact(t *testing.T) {
	cases := []struct {
		seconds  uint64
		expected string
	}{
		{seconds: 0, expected: "0s"},
		{seconds: 59, expected: "59s"},
		{seconds: 60, expected: "1m 00s"},
		{seconds: 3*60 + 5, expected: "3m 05s"},
		{seconds: 3600, expected: "1h 00m 00s"},
		{seconds: 25*3600 + 2*60 + 3, expected: "25h 02m 03s"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if got := fmtElapsedCompact(tc.seconds); got != tc.expected {
				t.Fatalf("fmtElapsedCompact(%d) = %q, want %q", tc.seconds, got, tc.expected)
			}
		})
	}
}

func TestFilterIndexes_KeepsListOrder(t *testing.T) {
	t.Parallel()

	items := sampleItems()
	if got := filterIndexes(items, ""); len(got) != 3 {
		t.Fatalf("empty query should keep all rows, got %v", got)
	}
	got := filterIndexes(items, "H")
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("filter must keep server order, got %v", got)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected hello and thanks to match, got %v", got)
	}
}
