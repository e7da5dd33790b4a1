package pm

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lockfiles []string
		wantName  string
		wantArgs  []string
	}{
		{"no lock file", nil, "npm", []string{"run", "build"}},
		{"package-lock only", []string{"package-lock.json"}, "npm", []string{"run", "build"}},
		{"yarn", []string{"yarn.lock"}, "yarn", []string{"build"}},
		{"pnpm", []string{"pnpm-lock.yaml"}, "pnpm", []string{"run", "build"}},
		{"yarn wins over pnpm", []string{"pnpm-lock.yaml", "yarn.lock"}, "yarn", []string{"build"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			for _, f := range tt.lockfiles {
				touch(t, dir, f)
			}

			m := Detect(dir)
			if m.Name != tt.wantName {
				t.Errorf("Detect() = %q, want %q", m.Name, tt.wantName)
			}
			if got := m.Args("build"); !reflect.DeepEqual(got, tt.wantArgs) {
				t.Errorf("Args(build) = %v, want %v", got, tt.wantArgs)
			}
		})
	}
}

func TestDetect_IgnoresParentLockfile(t *testing.T) {
	t.Parallel()
	parent := t.TempDir()
	touch(t, parent, "yarn.lock")
	child := filepath.Join(parent, "app")
	if err := os.Mkdir(child, 0o755); err != nil {
		t.Fatal(err)
	}

	if m := Detect(child); m.Name != "npm" {
		t.Errorf("Detect(child) = %q, want npm", m.Name)
	}
}

func TestCommandLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		m    Manager
		want string
	}{
		{Npm, "npm run test"},
		{Yarn, "yarn test"},
		{Pnpm, "pnpm run test"},
	}
	for _, tt := range tests {
		if got := tt.m.CommandLine("test"); got != tt.want {
			t.Errorf("%s.CommandLine(test) = %q, want %q", tt.m.Name, got, tt.want)
		}
	}
}
