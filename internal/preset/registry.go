// Package preset supplies whole, internally consistent display timing
// records for common VESA DMT and CEA-861 modes. A preset replaces the
// current record wholesale; it never passes through the consistency engine.
package preset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/praqsys/edidctl/internal/edid"
)

var (
	ErrPresetExists   = errors.New("preset already exists")
	ErrInvalidPreset  = errors.New("invalid preset")
	ErrPresetNotFound = errors.New("preset not found")
)

// Preset is one named standard timing.
type Preset struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      edid.Params `json:"params"`
}

// Registry stores presets by stable identifier.
type Registry struct {
	items map[string]Preset
}

// NewRegistry creates an empty preset registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Preset)}
}

// Register adds a preset to the registry. The timing must be internally
// consistent and pass validation: presets bypass the consistency engine, so
// a broken one would poison every record built from it.
func (r *Registry) Register(p Preset) error {
	id := strings.TrimSpace(p.ID)
	if id == "" || strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: id and name are required", ErrInvalidPreset)
	}
	if !isValidID(id) {
		return fmt.Errorf("%w: invalid id format %q", ErrInvalidPreset, id)
	}
	if errs := edid.Validate(p.Params); len(errs) != 0 {
		return fmt.Errorf("%w: %q fails validation: %v", ErrInvalidPreset, id, errs)
	}
	if _, ok := r.items[id]; ok {
		return ErrPresetExists
	}
	r.items[id] = p
	return nil
}

// Resolve returns a preset by id.
func (r *Registry) Resolve(id string) (Preset, bool) {
	p, ok := r.items[id]
	return p, ok
}

// List returns presets in deterministic order by id.
func (r *Registry) List() []Preset {
	list := make([]Preset, 0, len(r.items))
	for _, p := range r.items {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func isValidID(id string) bool {
	if id == "" {
		return false
	}
	lastSep := false
	for i := 0; i < len(id); i++ {
		c := id[i]
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		isSep := c == '.' || c == '-' || c == '_'
		if !(isLower || isDigit || isSep) {
			return false
		}
		if i == 0 || i == len(id)-1 {
			if isSep {
				return false
			}
		}
		if isSep && lastSep {
			return false
		}
		lastSep = isSep
	}
	return true
}
