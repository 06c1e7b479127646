package builder

import "errors"

// ErrTooFewVertices indicates a constructor's vertex count is below the
// minimum that topology requires (e.g. Path(1), Wheel(3)).
var ErrTooFewVertices = errors.New("builder: parameter too small")
