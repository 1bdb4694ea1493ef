package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// WriteDefault writes Default() as TOML to path. It refuses to overwrite an
// existing file unless force is set.
func WriteDefault(fs afero.Fs, path string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := fs.OpenFile(path, flags, 0o600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
