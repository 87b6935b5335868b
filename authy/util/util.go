package util

import (
	"os"
	"strconv"
)

func DebugEnabled() bool {
	return etb("AUTHY2OTP_DEBUG")
}

func etb(envName string) bool {
	v, ok := os.LookupEnv(envName)
	if !ok {
		return false
	}

	bv, err := strconv.ParseBool(v)

	return err == nil && bv
}

// GetEnvOr reads the given environment variable, falling back to def when it
// is unset or empty.
func GetEnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
