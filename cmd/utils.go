package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Erawpalassalg/GDTools/internal/dice"
	"github.com/Erawpalassalg/GDTools/internal/library"
)

// libraryPath resolves the YAML expression library location from the flag,
// the config, or the default under the user's home directory.
func libraryPath() string {
	if path := viper.GetString("library"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gdtools-library.yaml"
	}
	return filepath.Join(home, ".gdtools-library.yaml")
}

// resolveExpr turns a CLI argument into a pool, looking named expressions up
// in the library before falling back to raw dice notation.
func resolveExpr(arg string) (dice.Pool, error) {
	lib, err := library.Load(libraryPath())
	if err != nil {
		return dice.Pool{}, err
	}
	return lib.Resolve(arg)
}
