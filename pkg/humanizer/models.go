package humanizer

import (
	"slices"

	"github.com/germanamz/humanize/pkg/providers"
)

// role is the job a model does within a run.
type role int

const (
	rolePrimary role = iota
	roleSecondary
	roleChecker
)

func (r role) String() string {
	switch r {
	case rolePrimary:
		return "primary"
	case roleSecondary:
		return "secondary"
	default:
		return "checker"
	}
}

// resolveModel picks the model for r. Rewrite roles honor preferred when it is
// in the configured list, then take the first configured model, then the
// provider default. The checker ignores preferred and takes the second
// configured model or the provider's small default.
func resolveModel(ps ProviderSettings, r role, preferred string) string {
	if r == roleChecker {
		if len(ps.Models) > 1 && ps.Models[1] != "" {
			return ps.Models[1]
		}
		return providers.DefaultCheckerModel(ps.Provider)
	}

	if preferred != "" && slices.Contains(ps.Models, preferred) {
		return preferred
	}
	if len(ps.Models) > 0 && ps.Models[0] != "" {
		return ps.Models[0]
	}
	return providers.DefaultModel(ps.Provider)
}
