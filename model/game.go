package model

// Installation is where a Steam app is installed and the library folder
// (a steamapps directory) that holds it.
type Installation struct {
	Dir     string `yaml:"dir"`
	Library string `yaml:"library"`
}

// GameInfo is the result of resolving one Steam app id. Installation is nil
// when the game is not installed. ProtonPrefix may be set or nil
// independently of Installation.
type GameInfo struct {
	AppID        string        `yaml:"app_id"`
	Installation *Installation `yaml:"installation,omitempty"`
	ProtonPrefix *string       `yaml:"proton_prefix,omitempty"`
}

func (g GameInfo) Found() bool {
	return g.Installation != nil
}

// LoaderVersionResponse is the body of the Geode loader version endpoint.
type LoaderVersionResponse struct {
	Error   string         `json:"error"`
	Payload *LoaderVersion `json:"payload"`
}

type LoaderVersion struct {
	Tag        string `json:"tag"`
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	Prerelease bool   `json:"prerelease"`
}
