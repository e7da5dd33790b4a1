package version

import "testing"

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"1.2", "1.2.0", 0},
		{"2.0.0", "1.9.9", 1},
		{"1.9.9", "2.0.0", -1},
		{"1.10.0", "1.9.0", 1},
		{"v18.17.0", "18.0.0", 1},
		{"v16.20.2", "18.0.0", -1},
		{"1.0.0", "1.0.0", 0},
		{"1", "1.0.0.0", 0},
		{"1.0.1", "1", 1},
		{"", "0.0", 0},
		{"1.2.3-beta.1", "1.2.3", -1},
		{"1.2.3", "1.2.3-beta.1", 1},
		{"1.2.3-beta.1", "1.2.2", 1},
		{"1.2.3-rc.2", "1.2.3-rc.1", 1},
		{"1.2.3-rc.1", "1.2.3-rc.1", 0},
		{"1.2.3+build.5", "1.2.3", 0},
		{"v2.0.0-alpha+exp.sha.5114f85", "2.0.0-alpha", 0},
		{"99999999999999999999999", "1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			t.Parallel()
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompare_Antisymmetric(t *testing.T) {
	t.Parallel()

	versions := []string{"", "0", "1", "1.0", "1.0.1", "1.2", "1.2.0", "1.10", "2.0.0", "v2", "10.0.0-rc.1", "10.0.0", "10.0.0-rc.2", "1.0.0+meta", "3.x"}
	for _, a := range versions {
		for _, b := range versions {
			if Compare(a, b) != -Compare(b, a) {
				t.Errorf("Compare(%q, %q) = %d but Compare(%q, %q) = %d", a, b, Compare(a, b), b, a, Compare(b, a))
			}
		}
	}
}

func TestAtLeast(t *testing.T) {
	t.Parallel()

	if !AtLeast("v20.11.1", "18.0.0") {
		t.Error("AtLeast(v20.11.1, 18.0.0) = false, want true")
	}
	if !AtLeast("18", "18.0.0") {
		t.Error("AtLeast(18, 18.0.0) = false, want true")
	}
	if AtLeast("v14.21.3", "18.0.0") {
		t.Error("AtLeast(v14.21.3, 18.0.0) = true, want false")
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"18.0.0", true},
		{"v18", true},
		{"1.2.3.4", true},
		{"", false},
		{"1..2", false},
		{"1.2.x", false},
		{"latest", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.in); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
