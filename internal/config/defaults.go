package config

import _ "embed"

//go:embed defaults/brickgame.yaml
var defaultYAML []byte

// FileName is the configuration file name looked up on disk.
const FileName = "brickgame.yaml"
