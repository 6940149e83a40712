package config

import (
	"os"
	"time"

	"github.com/apex/log"
)

var configer Configer = &DotenvConfig{}

func SetConfig(c Configer) {
	configer = c
}

func GetConfig() Configer {
	return configer
}

// MustLoadFromDotenv loads the dotenv file named by SR_DOTENV, falling
// back to stockrelay.env in the working directory. A missing file is fatal
// only when SR_DOTENV was set explicitly; otherwise the process runs on
// the ambient environment.
func MustLoadFromDotenv() Configer {
	path := os.Getenv("SR_DOTENV")

	explicit := path != ""
	if !explicit {
		path = "stockrelay.env"
	}

	if err := configer.LoadFromPath(path); err != nil && explicit {
		log.Fatalf("Unable to load dotenv file %s: %s", path, err)
	}

	return configer
}

func GetKey(key string) string {
	return configer.GetKey(key)
}

func MustGetKey(key string) string {
	return configer.MustGetKey(key)
}

func GetKeyWithDefault(key, defaultValue string) string {
	return configer.GetKeyWithDefault(key, defaultValue)
}

func GetIntKeyWithDefault(key string, defaultValue int) int {
	return configer.GetIntKeyWithDefault(key, defaultValue)
}

func GetDurationKeyWithDefault(key string, defaultValue time.Duration) time.Duration {
	return configer.GetDurationKeyWithDefault(key, defaultValue)
}
