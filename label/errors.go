package label

import "errors"

// Sentinel errors for label data-model construction.
var (
	// ErrInvalidPriority indicates a Feature.Priority outside [0,1].
	ErrInvalidPriority = errors.New("label: priority must be within [0,1]")

	// ErrInvalidObstacleFactor indicates an ObstacleSettings.Factor outside [0,2].
	ErrInvalidObstacleFactor = errors.New("label: obstacle factor must be within [0,2]")

	// ErrNilPolygon indicates a polygon Feature was constructed without
	// polygon geometry.
	ErrNilPolygon = errors.New("label: polygon feature requires geometry")
)
