// Package catalog loads the fixed attorney roster. The roster is
// configuration, not data: it ships embedded, can be overridden by file, and
// is immutable once loaded.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/familybridge/familybridge/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRoster []byte

type rosterFile struct {
	Attorneys []domain.Attorney `yaml:"attorneys"`
}

// Roster is the immutable attorney catalog.
type Roster struct {
	attorneys []domain.Attorney
	byID      map[int]*domain.Attorney
}

// Load reads the roster from path, or the embedded default when path is empty.
func Load(path string) (*Roster, error) {
	data := defaultRoster
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read roster file: %w", err)
		}
		data = b
	}

	var rf rosterFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if len(rf.Attorneys) == 0 {
		return nil, fmt.Errorf("roster is empty")
	}

	r := &Roster{
		attorneys: rf.Attorneys,
		byID:      make(map[int]*domain.Attorney, len(rf.Attorneys)),
	}
	for i := range r.attorneys {
		a := &r.attorneys[i]
		if _, dup := r.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate attorney id %d", a.ID)
		}
		r.byID[a.ID] = a
	}
	return r, nil
}

// All returns the roster in catalog order. Callers must not mutate entries.
func (r *Roster) All() []domain.Attorney {
	return r.attorneys
}

// ByID returns the attorney with the given id, or nil.
func (r *Roster) ByID(id int) *domain.Attorney {
	return r.byID[id]
}

// Len returns the roster size.
func (r *Roster) Len() int {
	return len(r.attorneys)
}
