package envutil

import (
	"log"
	"os"
)

// MustGetenv gets the value of an environment variable, or exits if it has no value.
func MustGetenv(name string) string {
	val, found := os.LookupEnv(name)
	if !found || val == "" {
		log.Fatalf("Environment variable %s is required but not set", name)
	}
	return val
}

// GetenvDefault gets the value of an environment variable, or the provided
// default if it has no value.
func GetenvDefault(name, def string) string {
	if val, found := os.LookupEnv(name); found {
		return val
	}
	return def
}
