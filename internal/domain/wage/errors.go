package wage

import "errors"

var ErrNoEffectiveWage = errors.New("no minimum wage configured for the requested date")
