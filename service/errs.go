package service

import (
	"fmt"
)

var (
	ErrGameNotFound         = fmt.Errorf("game not found in any steam library")
	ErrGameDirNotFound      = fmt.Errorf("game directory not found")
	ErrPrefixNotFound       = fmt.Errorf("wine prefix not found")
	ErrProtonPrefixNotFound = fmt.Errorf("proton prefix not found")
	ErrInvalidTransition    = fmt.Errorf("invalid installer state transition")
)
