package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load reads environment variables from files (".env" when none are
// given). Variables already set in the environment win. Missing files are
// not an error.
func Load(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
