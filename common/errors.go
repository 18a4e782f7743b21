package common

import (
	"errors"
	"fmt"
)

var ErrorInvalidValue = errors.New("invalid value")

// the feature errors wrap ErrorInvalidValue, callers can match either one
var (
	ErrorFeatureNotFound = fmt.Errorf("%w: feature not found", ErrorInvalidValue)
	ErrorNotNumeric      = fmt.Errorf("%w: feature is not numeric", ErrorInvalidValue)
	ErrorLengthMismatch  = fmt.Errorf("%w: values length not equal to row count", ErrorInvalidValue)
)
