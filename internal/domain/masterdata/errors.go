package masterdata

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrContractNotFound = errors.New("contract not found")
)
