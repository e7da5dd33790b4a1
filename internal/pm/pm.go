// Package pm detects which package manager runs a project's scripts.
//
// Detection looks for lock files in the working directory only:
//
//   - yarn.lock       -> yarn <script>
//   - pnpm-lock.yaml  -> pnpm run <script>
//   - neither         -> npm run <script>
//
// yarn takes precedence when both lock files exist.
package pm

import (
	"os"
	"path/filepath"
)

// Manager describes how a package manager is invoked.
type Manager struct {
	Name     string // executable name
	Lockfile string // marker file that selects this manager, empty for the default
	runVerb  bool   // whether scripts are started with "run <script>"
}

var (
	// Yarn runs scripts as "yarn <script>".
	Yarn = Manager{Name: "yarn", Lockfile: "yarn.lock"}
	// Pnpm runs scripts as "pnpm run <script>".
	Pnpm = Manager{Name: "pnpm", Lockfile: "pnpm-lock.yaml", runVerb: true}
	// Npm is the default and runs scripts as "npm run <script>".
	Npm = Manager{Name: "npm", runVerb: true}
)

// detectOrder lists the managers with a marker file, highest precedence first.
var detectOrder = []Manager{Yarn, Pnpm}

// Detect returns the manager selected by the lock files in dir.
func Detect(dir string) Manager {
	for _, m := range detectOrder {
		if exists(filepath.Join(dir, m.Lockfile)) {
			return m
		}
	}
	return Npm
}

// Args returns the arguments that run script with this manager.
func (m Manager) Args(script string) []string {
	if m.runVerb {
		return []string{"run", script}
	}
	return []string{script}
}

// CommandLine returns the full invocation as a single display string.
func (m Manager) CommandLine(script string) string {
	line := m.Name
	for _, a := range m.Args(script) {
		line += " " + a
	}
	return line
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
