package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/codegauntlet/gauntlet/internal/rules"
	"github.com/codegauntlet/gauntlet/pkg/check"
)

// dotfile is the registry-override section of a project .gauntlet.yaml.
// Exception lists replace the defaults wholesale; disabled maps a group
// name to the validators removed from it.
type dotfile struct {
	Exceptions map[string][]string `yaml:"exceptions"`
	Disabled   map[string][]string `yaml:"disabled"`
}

// Overrides are per-project registry adjustments.
type Overrides struct {
	Exceptions map[check.ID][]string
	Disabled   map[string][]check.ID
}

// LoadOverrides reads registry overrides from a .gauntlet.yaml file. A
// missing file yields empty overrides.
func LoadOverrides(path string) (*Overrides, error) {
	o := &Overrides{
		Exceptions: map[check.ID][]string{},
		Disabled:   map[string][]check.ID{},
	}
	if path == "" {
		return o, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return o, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var d dotfile
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for id, values := range d.Exceptions {
		o.Exceptions[check.ID(id)] = values
	}
	for groupName, ids := range d.Disabled {
		for _, id := range ids {
			o.Disabled[groupName] = append(o.Disabled[groupName], check.ID(id))
		}
	}
	return o, nil
}

// Apply rewrites the registry's exception lists and removes disabled
// validators. Naming an unknown group or validator is a configuration
// error.
func (o *Overrides) Apply(reg *rules.Registry) error {
	for id, values := range o.Exceptions {
		reg.SetExceptionList(id, values...)
	}
	for groupName, ids := range o.Disabled {
		for _, id := range ids {
			removed, err := reg.RemoveValidator(groupName, id)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("disable %s: no such validator in group %s", id, groupName)
			}
		}
	}
	return nil
}
