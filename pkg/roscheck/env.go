package roscheck

import "os"

// EnvGetter abstracts environment variable access for testability.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter implements EnvGetter using the OS environment.
type RealEnvGetter struct{}

// LookupEnv retrieves an environment variable.
func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
