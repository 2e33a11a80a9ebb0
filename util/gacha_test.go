package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGachaConfigNormalizeDefaults(t *testing.T) {
	cfg := GachaConfig{}.Normalize()

	require.Equal(t, int64(DefaultGachaCost), cfg.Cost)
	require.Equal(t, DefaultGachaCharacterWeight, cfg.CharacterWeight)
	require.Equal(t, DefaultGachaAssetWeight, cfg.AssetWeight)
	require.Equal(t, DefaultGachaBonusWeight, cfg.BonusWeight)
	require.Equal(t, DefaultGachaAssetPool, cfg.AssetPool)
	require.Equal(t, int64(DefaultGachaBonusMin), cfg.BonusMin)
	require.Equal(t, int64(DefaultGachaBonusMax), cfg.BonusMax)
	require.Equal(t, int32(DefaultGachaMaxAssetSlots), cfg.MaxAssetSlots)
}

func TestGachaConfigNormalizeKeepsValid(t *testing.T) {
	in := GachaConfig{
		Cost:            120,
		CharacterWeight: 0.5,
		AssetWeight:     0.3,
		BonusWeight:     0.2,
		AssetPool:       []string{"frame_custom"},
		BonusMin:        10,
		BonusMax:        15,
		MaxAssetSlots:   5,
	}
	require.Equal(t, in, in.Normalize())
}

func TestGachaConfigNormalizeInvalidWeights(t *testing.T) {
	// A negative weight poisons the whole vector; all three reset together.
	cfg := GachaConfig{CharacterWeight: -1, AssetWeight: 0.9, BonusWeight: 0.1}.Normalize()
	require.Equal(t, DefaultGachaCharacterWeight, cfg.CharacterWeight)
	require.Equal(t, DefaultGachaAssetWeight, cfg.AssetWeight)
	require.Equal(t, DefaultGachaBonusWeight, cfg.BonusWeight)

	// All-zero weights are unusable and reset as well.
	cfg = GachaConfig{}.Normalize()
	require.Equal(t, DefaultGachaBonusWeight, cfg.BonusWeight)
}

func TestGachaConfigNormalizeInvalidBonusRange(t *testing.T) {
	cfg := GachaConfig{BonusMin: 50, BonusMax: 10}.Normalize()
	require.Equal(t, int64(DefaultGachaBonusMin), cfg.BonusMin)
	require.Equal(t, int64(DefaultGachaBonusMax), cfg.BonusMax)
}

func TestNormalizeCost(t *testing.T) {
	cfg := GachaConfig{Cost: 80}.Normalize()

	require.Equal(t, int64(80), cfg.NormalizeCost(0))
	require.Equal(t, int64(80), cfg.NormalizeCost(-10))
	require.Equal(t, int64(30), cfg.NormalizeCost(30))
}

func TestTitleForPoints(t *testing.T) {
	cases := []struct {
		points int64
		title  string
	}{
		{0, "Wanderer"},
		{99, "Wanderer"},
		{100, "Stroller"},
		{299, "Stroller"},
		{300, "Walker"},
		{600, "Explorer"},
		{1000, "Pathfinder"},
		{2000, "Voyager"},
		{3500, "Trailblazer"},
		{4999, "Trailblazer"},
		{5000, "Legend"},
		{100000, "Legend"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.title, TitleForPoints(tc.points), "points=%d", tc.points)
	}
}
