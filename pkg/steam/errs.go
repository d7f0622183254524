package steam

import "errors"

var ErrSteamRootNotFound = errors.New("steam root not found")
