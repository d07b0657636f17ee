package registry

import "fmt"

type Category string

const (
	CategoryReleases  Category = "releases"
	CategoryResearch  Category = "research"
	CategoryBusiness  Category = "business"
	CategoryProducts  Category = "products"
	CategoryCommunity Category = "community"
	CategoryGeneral   Category = "general"
)

var categories = map[Category]struct {
	icon string
	name string
}{
	CategoryReleases:  {"🚀", "New Releases"},
	CategoryResearch:  {"🔬", "Research"},
	CategoryBusiness:  {"💰", "Business"},
	CategoryProducts:  {"📱", "Product Updates"},
	CategoryCommunity: {"💬", "Community"},
	CategoryGeneral:   {"📰", "General"},
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// Icon returns the emoji shown next to the category heading.
func (c Category) Icon() string {
	if meta, ok := categories[c]; ok {
		return meta.icon
	}
	return categories[CategoryGeneral].icon
}

// DisplayName returns the heading used for the category, e.g. "🔬 Research".
// Unknown categories fall back to their raw value.
func (c Category) DisplayName() string {
	meta, ok := categories[c]
	if !ok {
		return string(c)
	}
	return fmt.Sprintf("%s %s", meta.icon, meta.name)
}

type Source struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	URL      string   `yaml:"url"`
	Category Category `yaml:"category"`
	Language string   `yaml:"language"`
}

type Organization struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}
