package style

// Profile holds the generation defaults applied at a level when the caller
// supplies no override.
type Profile struct {
	Temperature      float64
	FrequencyPenalty float64
}

var profiles = map[Level]Profile{
	Light:      {Temperature: 0.7, FrequencyPenalty: 0.2},
	Medium:     {Temperature: 1.0, FrequencyPenalty: 0.5},
	Aggressive: {Temperature: 1.3, FrequencyPenalty: 0.8},
}

// Profile returns the generation defaults for the level. An unknown level
// yields the Medium profile.
func (l Level) Profile() Profile {
	if p, ok := profiles[l]; ok {
		return p
	}
	return profiles[Medium]
}

// BurstThresholds returns the short and long sentence word-count thresholds
// used by the burstiness pass. Aggressive gets 6/28, every other level 8/24.
func (l Level) BurstThresholds() (short, long int) {
	if l == Aggressive {
		return 6, 28
	}
	return 8, 24
}

// EllipsisRate returns how many full stops out of 100 the punctuation pass
// turns into an ellipsis.
func (l Level) EllipsisRate() int {
	if l == Aggressive {
		return 35
	}
	return 20
}
