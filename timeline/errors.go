package timeline

import "errors"

var (
	// ErrNoItems indicates an item count below 1
	ErrNoItems = errors.New("timeline: item count must be at least 1")
	// ErrStaggerBuffer indicates a stagger buffer below 1
	ErrStaggerBuffer = errors.New("timeline: stagger buffer must be at least 1")
	// ErrEntryFraction indicates an entry fraction outside (0,1)
	ErrEntryFraction = errors.New("timeline: entry fraction must be in (0,1)")
	// ErrStartOffset indicates a start offset outside [0,1)
	ErrStartOffset = errors.New("timeline: start offset must be in [0,1)")
	// ErrTrail indicates an invalid trailing color hold or ramp end
	ErrTrail = errors.New("timeline: trail hold must be >= 0 and trail end in (0,1]")
	// ErrTitleFade indicates an invalid title fade window
	ErrTitleFade = errors.New("timeline: title fade end must be in (0,1] and fade target in [0,1]")
	// ErrStyle indicates a non-finite or negative style constant
	ErrStyle = errors.New("timeline: style constants must be finite and non-negative")
)
