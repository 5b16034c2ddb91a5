package domain

// ChipName identifies one of the season chips.
type ChipName string

const (
	ChipWildcard      ChipName = "WILDCARD"
	ChipFreeHit       ChipName = "FREE_HIT"
	ChipTripleCaptain ChipName = "TRIPLE_CAPTAIN"
	ChipBenchBoost    ChipName = "BENCH_BOOST"
)

// KnownChip reports whether the name is a chip this client understands.
func KnownChip(name ChipName) bool {
	switch name {
	case ChipWildcard, ChipFreeHit, ChipTripleCaptain, ChipBenchBoost:
		return true
	}
	return false
}

// ChipStatus mirrors the backend's chip state. At most one chip is active
// at a time; how often each chip may be used per season is backend policy,
// so Used is surfaced for display rather than re-validated here.
type ChipStatus struct {
	Active ChipName   `json:"active,omitempty"`
	Used   []ChipName `json:"used"`
}

// IsActive reports whether the named chip is currently active.
func (c ChipStatus) IsActive(name ChipName) bool {
	return c.Active == name
}

// WasUsed reports whether the named chip has already been consumed.
func (c ChipStatus) WasUsed(name ChipName) bool {
	for _, u := range c.Used {
		if u == name {
			return true
		}
	}
	return false
}
