package feed

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lysyi3m/ai-digest/app/registry"
)

// Tagger detects organization mentions by case-insensitive keyword matching.
type Tagger struct {
	organizations []registry.Organization
}

func NewTagger(organizations []registry.Organization) *Tagger {
	lowered := make([]registry.Organization, len(organizations))
	caser := cases.Lower(language.Und)
	for i, org := range organizations {
		keywords := make([]string, len(org.Keywords))
		for j, kw := range org.Keywords {
			keywords[j] = caser.String(kw)
		}
		lowered[i] = registry.Organization{Name: org.Name, Keywords: keywords}
	}
	return &Tagger{organizations: lowered}
}

// Detect returns at most MaxOrganizations organization names in declaration
// order of the registry. An organization is recorded on its first keyword hit.
func (t *Tagger) Detect(text string) []string {
	found := []string{}
	if text == "" {
		return found
	}

	// Casers carry state, so one per call keeps Detect safe for concurrent use.
	lower := cases.Lower(language.Und).String(text)
	seen := make(map[string]bool)

	for _, org := range t.organizations {
		if seen[org.Name] {
			continue
		}
		for _, kw := range org.Keywords {
			if strings.Contains(lower, kw) {
				found = append(found, org.Name)
				seen[org.Name] = true
				break
			}
		}
		if len(found) == MaxOrganizations {
			break
		}
	}

	return found
}
