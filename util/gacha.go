package util

// Documented gacha defaults. Operators may override any of them through the
// environment; values that fail validation silently fall back to these.
const (
	DefaultGachaCost            = 50
	DefaultGachaCharacterWeight = 0.4
	DefaultGachaAssetWeight     = 0.4
	DefaultGachaBonusWeight     = 0.2
	DefaultGachaBonusMin        = 20
	DefaultGachaBonusMax        = 80
	DefaultGachaMaxAssetSlots   = 3
)

// DefaultGachaAssetPool is used when no asset pool is configured.
var DefaultGachaAssetPool = []string{"frame_spring", "frame_ocean", "frame_night", "badge_compass", "badge_lantern"}

// GachaConfig holds the knobs of the gacha resolver.
type GachaConfig struct {
	Cost            int64
	CharacterWeight float64
	AssetWeight     float64
	BonusWeight     float64
	AssetPool       []string
	BonusMin        int64
	BonusMax        int64
	MaxAssetSlots   int32
}

// Normalize replaces every invalid field with its documented default and
// returns the result. Malformed configuration is a leniency case here, not an
// error: callers always get a usable config back.
func (c GachaConfig) Normalize() GachaConfig {
	if c.Cost <= 0 {
		c.Cost = DefaultGachaCost
	}
	if c.CharacterWeight < 0 || c.AssetWeight < 0 || c.BonusWeight < 0 ||
		c.CharacterWeight+c.AssetWeight+c.BonusWeight <= 0 {
		c.CharacterWeight = DefaultGachaCharacterWeight
		c.AssetWeight = DefaultGachaAssetWeight
		c.BonusWeight = DefaultGachaBonusWeight
	}
	if len(c.AssetPool) == 0 {
		c.AssetPool = DefaultGachaAssetPool
	}
	if c.BonusMin <= 0 || c.BonusMax < c.BonusMin {
		c.BonusMin = DefaultGachaBonusMin
		c.BonusMax = DefaultGachaBonusMax
	}
	if c.MaxAssetSlots <= 0 {
		c.MaxAssetSlots = DefaultGachaMaxAssetSlots
	}
	return c
}

// NormalizeCost applies the permissive cost policy for a single roll:
// a non-positive requested cost falls back to the configured cost.
func (c GachaConfig) NormalizeCost(requested int64) int64 {
	if requested <= 0 {
		return c.Cost
	}
	return requested
}
