package slingshot

import (
	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/physics"
)

// TargetKind distinguishes ordinary targets from the high-value one.
type TargetKind int

const (
	TargetOrdinary TargetKind = iota
	TargetDistinguished
)

// String returns the kind name.
func (k TargetKind) String() string {
	switch k {
	case TargetOrdinary:
		return "ordinary"
	case TargetDistinguished:
		return "king"
	default:
		return "unknown"
	}
}

// Points returns the score for destroying a target of this kind.
func (k TargetKind) Points(sc config.ScoringConfig) int {
	switch k {
	case TargetOrdinary:
		return sc.OrdinaryTarget
	case TargetDistinguished:
		return sc.DistinguishedTarget
	default:
		return 0
	}
}

// target is the game tag stored in a target body's Data slot.
type target struct {
	body      *physics.Body
	kind      TargetKind
	destroyed bool
}
