/* ippdump - decode and pretty-print captured IPP messages
 *
 * Tool configuration
 */

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the tool's optional configuration, loaded from a TOML
// file. Command-line flags override whatever the file says; with no
// file and no flags the defaults below apply.
type Config struct {
	// LogLevel selects zerolog's level: "debug", "info", "warn",
	// "error".
	LogLevel string `toml:"log_level"`

	// Pretty selects zerolog's console writer instead of JSON lines.
	Pretty bool `toml:"pretty"`

	// ChunkSize is the size of the chunks the input is fed to the
	// stream parser in.
	ChunkSize int `toml:"chunk_size"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		LogLevel:  "info",
		Pretty:    true,
		ChunkSize: 4096,
	}
}

// loadConfig reads the TOML file at path over the defaults. A missing
// file is only an error when the user named the path explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	conf := defaultConfig()

	meta, err := toml.DecodeFile(path, &conf)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return conf, nil
		}
		return conf, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return conf, fmt.Errorf("config %s: unknown key %q",
			path, undecoded[0].String())
	}

	if conf.ChunkSize <= 0 {
		return conf, fmt.Errorf("config %s: chunk_size must be positive", path)
	}

	return conf, nil
}
