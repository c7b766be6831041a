// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Language Selection - these keys govern transcript language resolution.
const (
	LanguageDefault = "language.default"
)

// Retry Policy - these keys bound the recovery loop for transient transport failures.
const (
	RetryInterval = "retry.interval"
	RetryWindow   = "retry.window"
)

// Batch Execution - these keys configure concurrent batch processing.
const (
	BatchWorkers = "batch.workers"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output behavior.
const (
	CliColored = "cli.colored"
)
