package svg

import "errors"

var (
	// ErrIndeterminateGeometry is returned by geometry queries whose answer
	// cannot be computed from the configuration alone (e.g. free text whose
	// rendered extent depends on font metrics). The component itself is
	// valid; only the query is unanswerable.
	ErrIndeterminateGeometry = errors.New("indeterminate geometry")

	// ErrNoPoints is returned when a polyline geometry query runs against
	// an empty point sequence. Construction rejects empty sequences, so
	// this only surfaces after ClearPoints.
	ErrNoPoints = errors.New("polyline has no points")
)
