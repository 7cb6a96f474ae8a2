package radial

import "github.com/cockroachdb/errors"

// Sentinel errors. Callers match them with errors.Is; the returned errors wrap
// them with the offending node id, offset or key.
var (
	// ErrInvalidNode is returned when a tree operation names a node that does
	// not exist in the tree.
	ErrInvalidNode = errors.New("radial: invalid node")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("radial: invalid config")

	// ErrTreeFormat is returned when tree source data cannot be parsed.
	ErrTreeFormat = errors.New("radial: malformed tree data")

	// ErrInvalidScript is returned when a playback script cannot be parsed.
	ErrInvalidScript = errors.New("radial: invalid script")
)
