package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// FileName is the manifest file rpc looks for.
const FileName = "package.json"

var (
	// ErrNotFound is returned when the directory has no manifest.
	ErrNotFound = errors.New("no package.json found")
	// ErrInvalid is returned when the manifest is malformed or has no scripts.
	ErrInvalid = errors.New("invalid package.json")
)

// Script is a single named entry of the scripts section.
type Script struct {
	Name    string
	Command string
}

// Scripts is an ordered set of scripts with lookup by name.
type Scripts struct {
	list  []Script
	index map[string]int
}

// NewScripts builds a Scripts value from entries in declaration order.
// A repeated name keeps its first position and takes the last command.
func NewScripts(entries ...Script) Scripts {
	s := Scripts{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if i, ok := s.index[e.Name]; ok {
			s.list[i].Command = e.Command
			continue
		}
		s.index[e.Name] = len(s.list)
		s.list = append(s.list, e)
	}
	return s
}

// Len returns the number of scripts.
func (s Scripts) Len() int { return len(s.list) }

// All returns the scripts in declaration order.
func (s Scripts) All() []Script {
	out := make([]Script, len(s.list))
	copy(out, s.list)
	return out
}

// Names returns the script names in declaration order.
func (s Scripts) Names() []string {
	names := make([]string, len(s.list))
	for i, sc := range s.list {
		names[i] = sc.Name
	}
	return names
}

// Get returns the command for name.
func (s Scripts) Get(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.list[i].Command, true
}

// Has reports whether a script called name exists.
func (s Scripts) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Manifest is the subset of package.json rpc cares about.
type Manifest struct {
	Path    string
	Name    string
	Version string
	Scripts Scripts
}

// Load reads dir/package.json. It does not look in parent directories.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	m.Path = path
	return m, nil
}

// Parse parses manifest content. It fails with ErrInvalid when the content
// is not a JSON object or has no non-empty scripts object.
func Parse(data []byte) (*Manifest, error) {
	m, err := parseMetadata(data)
	if err != nil {
		return nil, err
	}

	scripts := gjson.GetBytes(data, "scripts")
	if !scripts.Exists() {
		return nil, fmt.Errorf("%w: no scripts found", ErrInvalid)
	}
	if !scripts.IsObject() {
		return nil, fmt.Errorf("%w: scripts is not an object", ErrInvalid)
	}

	var entries []Script
	scripts.ForEach(func(key, value gjson.Result) bool {
		// npm ignores non-string script values, so do we
		if value.Type == gjson.String {
			entries = append(entries, Script{Name: key.String(), Command: value.String()})
		}
		return true
	})
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no scripts found", ErrInvalid)
	}

	m.Scripts = NewScripts(entries...)
	return m, nil
}

// parseMetadata validates data and reads the name and version fields.
func parseMetadata(data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalid)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalid)
	}

	return &Manifest{
		Name:    root.Get("name").String(),
		Version: root.Get("version").String(),
	}, nil
}
