package about

import "errors"

var ErrContentNotFound = errors.New("about content not found")
