package engine

// CoachingMode governs what happens to a computed adjustment.
type CoachingMode string

const (
	ModeCoached       CoachingMode = "coached"
	ModeCollaborative CoachingMode = "collaborative"
	ModeManual        CoachingMode = "manual"
)

// Valid reports whether m is a known mode.
func (m CoachingMode) Valid() bool {
	switch m {
	case ModeCoached, ModeCollaborative, ModeManual:
		return true
	}
	return false
}

// CoachingAction is the single decision taken at check-in time.
type CoachingAction string

const (
	// ActionSuppress means AdjustMacros must not be called.
	ActionSuppress CoachingAction = "suppress"
	// ActionPropose means the adjustment is stored and waits for confirmation.
	ActionPropose CoachingAction = "propose"
	// ActionApply means the adjustment becomes the new target immediately.
	ActionApply CoachingAction = "apply"
)

// DecideCoaching maps a coaching mode to its action. Unknown modes are
// treated as manual.
func DecideCoaching(mode CoachingMode) CoachingAction {
	switch mode {
	case ModeCoached:
		return ActionApply
	case ModeCollaborative:
		return ActionPropose
	default:
		return ActionSuppress
	}
}
