package inquiry

import "errors"

var ErrInquiryNotFound = errors.New("inquiry not found")
