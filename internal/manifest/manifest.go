// Package manifest loads bulk user-import files.
//
// A manifest is YAML:
//
//	defaults:
//	  role: viewer
//	users:
//	  - username: alice
//	    password: s3cret!
//	    email: alice@example.com
//	  - username: bob
//	    password: hunter22
//	    role: manager
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/herbiel/QuantDinger/client"
)

// Defaults fill fields an entry leaves empty.
type Defaults struct {
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

// Manifest is the decoded import file.
type Manifest struct {
	Defaults Defaults                   `yaml:"defaults"`
	Users    []client.CreateUserRequest `yaml:"users"`
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// Decode parses a manifest from r, applies defaults and rejects entries
// without a username or duplicated usernames.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &m, nil
		}
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	seen := make(map[string]int, len(m.Users))
	for i := range m.Users {
		u := &m.Users[i]
		if u.Username == "" {
			return nil, fmt.Errorf("manifest entry %d: username is empty", i)
		}
		if prev, dup := seen[u.Username]; dup {
			return nil, fmt.Errorf("manifest entry %d: username %q already used by entry %d", i, u.Username, prev)
		}
		seen[u.Username] = i
		if u.Role == "" {
			u.Role = m.Defaults.Role
		}
		if u.Password == "" {
			u.Password = m.Defaults.Password
		}
	}
	return &m, nil
}
