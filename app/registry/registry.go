package registry

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Registry is the immutable catalog of feed sources and known organizations.
type Registry struct {
	sources       []Source
	index         map[string]int
	organizations []Organization
}

type fileFormat struct {
	Sources       []Source       `yaml:"sources"`
	Organizations []Organization `yaml:"organizations"`
}

// Default returns the built-in catalog.
func Default() *Registry {
	r, err := New(defaultSources(), defaultOrganizations())
	if err != nil {
		panic(fmt.Sprintf("built-in registry is invalid: %v", err))
	}
	return r
}

func New(sources []Source, organizations []Organization) (*Registry, error) {
	r := &Registry{
		sources:       make([]Source, 0, len(sources)),
		index:         make(map[string]int, len(sources)),
		organizations: make([]Organization, 0, len(organizations)),
	}

	for i, src := range sources {
		if err := validateSource(src); err != nil {
			return nil, fmt.Errorf("invalid source at index %d: %w", i, err)
		}
		if _, dup := r.index[src.ID]; dup {
			return nil, fmt.Errorf("duplicate source id: %s", src.ID)
		}
		r.index[src.ID] = len(r.sources)
		r.sources = append(r.sources, src)
	}

	seen := make(map[string]bool, len(organizations))
	for i, org := range organizations {
		if org.Name == "" {
			return nil, fmt.Errorf("organization at index %d has no name", i)
		}
		if len(org.Keywords) == 0 {
			return nil, fmt.Errorf("organization %s has no keywords", org.Name)
		}
		// A repeated name keeps its first position.
		if seen[org.Name] {
			continue
		}
		seen[org.Name] = true
		keywords := make([]string, len(org.Keywords))
		copy(keywords, org.Keywords)
		r.organizations = append(r.organizations, Organization{Name: org.Name, Keywords: keywords})
	}

	return r, nil
}

// LoadFile reads a YAML catalog. A section missing from the file keeps the
// built-in defaults.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var raw fileFormat
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	sources := raw.Sources
	if len(sources) == 0 {
		sources = defaultSources()
	}
	for i := range sources {
		setDefaults(&sources[i])
	}

	organizations := raw.Organizations
	if len(organizations) == 0 {
		organizations = defaultOrganizations()
	}

	r, err := New(sources, organizations)
	if err != nil {
		return nil, fmt.Errorf("invalid registry %s: %w", path, err)
	}

	slog.Debug("Registry loaded", "path", path, "sources", len(r.sources), "organizations", len(r.organizations))

	return r, nil
}

func (r *Registry) Source(id string) (Source, bool) {
	i, ok := r.index[id]
	if !ok {
		return Source{}, false
	}
	return r.sources[i], true
}

func (r *Registry) Sources() []Source {
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

func (r *Registry) Organizations() []Organization {
	out := make([]Organization, len(r.organizations))
	copy(out, r.organizations)
	return out
}

// Resolve maps ids to sources in the given order, silently dropping unknown ids.
func (r *Registry) Resolve(ids []string) []Source {
	resolved := make([]Source, 0, len(ids))
	for _, id := range ids {
		src, ok := r.Source(id)
		if !ok {
			slog.Debug("Unknown source skipped", "source", id)
			continue
		}
		resolved = append(resolved, src)
	}
	return resolved
}

func setDefaults(src *Source) {
	if src.Category == "" {
		src.Category = CategoryGeneral
	}
	if src.Language == "" {
		src.Language = "en"
	}
	if src.Name == "" {
		src.Name = src.ID
	}
}

func validateSource(src Source) error {
	requiredFields := map[string]string{
		"source id":  src.ID,
		"source URL": src.URL,
	}

	for fieldName, fieldValue := range requiredFields {
		if fieldValue == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
	}

	if !src.Category.Valid() {
		return fmt.Errorf("invalid category for %s: %s", src.ID, src.Category)
	}

	if _, err := language.Parse(src.Language); err != nil {
		return fmt.Errorf("invalid language for %s: %s", src.ID, src.Language)
	}

	return nil
}
