package config

import "math"

// Adjustments a preset makes on top of the loaded configuration.
// Sling offsets are clamped back into the allowed ranges.
type presetAdjust struct {
	extraProjectiles int     // added to every level lineup by the game
	captureDelta     float64 // added to the capture radius
	pullDelta        float64 // added to the maximum pull
	forceDelta       float64 // added to the force scale
}

var presets = map[DifficultyPreset]presetAdjust{
	DifficultyEasy:   {extraProjectiles: 1, captureDelta: 5, pullDelta: 10},
	DifficultyNormal: {},
	DifficultyHard:   {extraProjectiles: -1, captureDelta: -5, pullDelta: -10, forceDelta: -0.002},
}

// ApplyPreset returns a copy of cfg with the preset's sling adjustments.
// Projectile counts are left alone: the game adds ExtraProjectiles to the
// lineup of each level. Unknown presets leave the configuration unchanged.
func ApplyPreset(cfg SlingshotConfig, preset DifficultyPreset) SlingshotConfig {
	adj, ok := presets[preset]
	if !ok {
		return cfg
	}
	cfg.Sling.CaptureRadius += adj.captureDelta
	cfg.Sling.MaxPull += adj.pullDelta
	cfg.Sling.ForceScale += adj.forceDelta
	cfg.Sling.clamp()
	return cfg
}

// ExtraProjectiles returns how many projectiles the preset adds to (or
// removes from) a level lineup.
func ExtraProjectiles(preset DifficultyPreset) int {
	return presets[preset].extraProjectiles
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
