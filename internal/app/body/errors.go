package body

import (
	"github.com/crmarques/nfvctl/faults"
)

func validationError(message string, cause error) error {
	return faults.NewTypedError(faults.ValidationError, message, cause)
}

// clientError mirrors the orchestrator client's own rejections, which carry a
// 404 status even though nothing was looked up remotely.
func clientError(message string) error {
	return faults.NewTypedErrorWithStatus(faults.ValidationError, message, 404, nil)
}
