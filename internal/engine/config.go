package engine

// Defaults mirror the deployed tier and capacity rules.
const (
	DefaultMinEntryAmount = 50_000_000
	DefaultMaxCapacity    = 10
)

// DefaultEntryTiers are the accepted entry fees when no tier set is
// configured.
var DefaultEntryTiers = []uint64{50_000_000, 100_000_000, 250_000_000, 500_000_000, 1_000_000_000}

// Config holds the validation rules of one engine deployment.
type Config struct {
	// MinEntryAmount is the smallest accepted entry fee.
	MinEntryAmount uint64
	// EntryTiers, when non-empty, restricts entry fees to an allow-list.
	EntryTiers []uint64
	// MaxCapacity bounds maxParticipants at pool creation.
	MaxCapacity int
}

func (c Config) withDefaults() Config {
	if c.MinEntryAmount == 0 {
		c.MinEntryAmount = DefaultMinEntryAmount
	}
	if c.EntryTiers == nil {
		c.EntryTiers = DefaultEntryTiers
	}
	if c.MaxCapacity == 0 {
		c.MaxCapacity = DefaultMaxCapacity
	}
	return c
}
