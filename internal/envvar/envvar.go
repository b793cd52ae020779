// Package envvar holds the environment variables read by the iarray packages.
package envvar

const (
	// FreezePolicy is the environment variable that holds the process-wide freeze policy used
	// when no policy has been set with iarray.SetPolicy(). Valid values are NONE, SHALLOW and DEEP
	// (case-insensitive). It is read once, the first time the policy is needed.
	FreezePolicy = "IArrayFreezePolicy"

	// LogLevel is the environment variable that sets telemetry/log.LogLevel. Valid values are
	// the ones accepted by slog.Level.UnmarshalText(), such as DEBUG, INFO, WARN or ERROR.
	LogLevel = "IArrayLogLevel"
)
