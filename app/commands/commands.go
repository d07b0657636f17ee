package commands

import (
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/lysyi3m/ai-digest/app/registry"
)

// Register adds every subcommand to the parser.
func Register(parser *flags.Parser) error {
	commands := []struct {
		name  string
		short string
		long  string
		data  interface{}
	}{
		{"fetch", "Fetch and render AI news", "Fetch the configured feeds, filter and rank the items, and render a digest.", &FetchCommand{}},
		{"send", "Email a rendered digest", "Convert a markdown digest into an HTML email and send it over SMTP. Credentials are read from EMAIL_USER and EMAIL_PASSWORD.", &SendCommand{}},
		{"preview", "Serve the email rendering of a digest", "Start an HTTP server that renders a markdown digest as the HTML email on every request.", &PreviewCommand{}},
	}

	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return fmt.Errorf("failed to register %s command: %w", c.name, err)
		}
	}

	return nil
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(path)
}

// splitList splits a comma separated flag value, dropping empty entries.
func splitList(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
