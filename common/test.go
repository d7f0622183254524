package common

import _ "embed"

//go:embed fixtures/libraryfolders.vdf
var SampleLibraryFoldersVDF string

//go:embed fixtures/libraryfolders.legacy.vdf
var SampleLegacyLibraryFoldersVDF string

//go:embed fixtures/appmanifest_322170.acf
var SampleAppManifestACF string

//go:embed fixtures/user.reg
var SampleUserReg string
