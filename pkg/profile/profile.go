// Package profile defines the profile model: a named bundle of environment
// variables plus an ordered list of dependency profile names.
package profile

// Profile is a single environment profile. Variables hold the key/value
// pairs the profile exports; Profiles lists the names of other profiles it
// inherits from, in declaration order. Duplicate dependency declarations
// are tolerated here and deduplicated during variable collection.
type Profile struct {
	Variables map[string]string `toml:"variables"`
	Profiles  []string          `toml:"profiles"`
}

// New returns an empty profile with an initialized variable map
func New() *Profile {
	return &Profile{
		Variables: make(map[string]string),
		Profiles:  []string{},
	}
}

// Clear removes all variables and dependencies
func (p *Profile) Clear() {
	p.Variables = make(map[string]string)
	p.Profiles = nil
}

// IsEmpty reports whether the profile has no variables and no dependencies
func (p *Profile) IsEmpty() bool {
	return len(p.Variables) == 0 && len(p.Profiles) == 0
}

// AddDependency appends a dependency profile name
func (p *Profile) AddDependency(name string) {
	p.Profiles = append(p.Profiles, name)
}

// RemoveDependency removes every occurrence of name from the dependency list
func (p *Profile) RemoveDependency(name string) {
	kept := p.Profiles[:0]
	for _, dep := range p.Profiles {
		if dep != name {
			kept = append(kept, dep)
		}
	}
	p.Profiles = kept
}

// SetVariable sets a variable, overwriting any existing value
func (p *Profile) SetVariable(key, value string) {
	if p.Variables == nil {
		p.Variables = make(map[string]string)
	}
	p.Variables[key] = value
}

// UnsetVariable removes a variable and returns its previous value, if any
func (p *Profile) UnsetVariable(key string) (string, bool) {
	value, ok := p.Variables[key]
	if ok {
		delete(p.Variables, key)
	}
	return value, ok
}

// Clone returns a deep copy, so callers can stage edits without mutating
// the session's working copy.
func (p *Profile) Clone() *Profile {
	clone := &Profile{
		Variables: make(map[string]string, len(p.Variables)),
		Profiles:  make([]string, len(p.Profiles)),
	}
	for k, v := range p.Variables {
		clone.Variables[k] = v
	}
	copy(clone.Profiles, p.Profiles)
	return clone
}
