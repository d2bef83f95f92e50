package config

// DefaultFile is read by Load when no path is given and it exists in the working directory.
const DefaultFile = "shop.toml"

// Load resolves defaults, the TOML file at path and the environment.
// With an empty path, DefaultFile is used if present.
// A missing file at an explicitly given path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" && FileExists(DefaultFile) {
		path = DefaultFile
	}

	if path != "" {
		fc, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}

		if err = ApplyFile(&cfg, fc); err != nil {
			return Config{}, err
		}
	}

	ApplyEnv(&cfg, nil)

	return cfg, nil
}
