package config

import (
	"path/filepath"

	"github.com/IceWhaleTech/CasaOS-Common/utils/constants"
)

var GeodeInstallerConfigFilePath = filepath.Join(constants.DefaultConfigPath, "geode-installer.conf")
