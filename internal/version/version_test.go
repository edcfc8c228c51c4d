package version

import "testing"

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		candidate string
		want      bool
	}{
		{"patch bump", "1.2.3", "1.2.4", true},
		{"minor bump", "1.2.3", "1.3.0", true},
		{"major bump", "1.2.3", "2.0.0", true},
		{"equal", "1.2.3", "1.2.3", false},
		{"older patch", "1.2.3", "1.2.2", false},
		{"older major", "2.0.0", "1.9.9", false},
		{"leading v on candidate", "1.2.3", "v1.2.4", true},
		{"leading v on current", "v1.2.3", "1.2.4", true},
		{"uppercase V", "V1.2.3", "V1.3.0", true},
		{"shorter current padded", "1.2", "1.2.1", true},
		{"shorter candidate padded", "1.2.1", "1.2", false},
		{"trailing zeros equal", "1.2", "1.2.0", false},
		{"malformed candidate segment as zero", "1.2.3", "1.2.x", false},
		{"malformed current segment as zero", "1.x.3", "1.1.0", true},
		{"fully malformed", "garbage", "also-garbage", false},
		{"empty current", "", "0.0.1", true},
		{"empty both", "", "", false},
		{"double digit segments", "1.9.0", "1.10.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNewer(tt.current, tt.candidate); got != tt.want {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.current, tt.candidate, got, tt.want)
			}
		})
	}
}
