package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// LoadEnvFile reads a dotenv file and exports its variables into the
// process environment. Variables that are already set win over the
// file. A missing file is not an error. The names of the exported
// variables are returned.
func LoadEnvFile(path string, log *zap.Logger) ([]string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("env file not found", zap.String("file", path))
			return nil, nil
		}
		return nil, err
	}

	// dotenv keys never contain a NUL byte, so they are never split
	k := koanf.New("\x00")

	if err := k.Load(file.Provider(path), dotenv.Parser()); err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", path, err)
	}

	var exported []string
	for key, value := range k.All() {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}

		if err := os.Setenv(key, fmt.Sprint(value)); err != nil {
			return exported, err
		}

		exported = append(exported, key)
	}

	log.Debug("loaded env file",
		zap.String("file", path),
		zap.Strings("exported", exported),
	)

	return exported, nil
}
