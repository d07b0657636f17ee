package cfg

import "time"

type Cfg struct {
	// Catalog
	RegistryFile string

	// Fetching
	UserAgent string
	Timeout   time.Duration
	Parallel  int

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
