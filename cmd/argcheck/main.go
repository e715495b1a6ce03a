// Command argcheck binds positional values against a YAML signature and
// prints the coerced result as JSON.
//
//	argcheck resize.yaml -- 640 480 fill '[crop, blur]'
//
// Every value is decoded as YAML, so 42 arrives as an int, true as a bool,
// [a, b] as a list and ~ as nil. Diagnostics are logged to stderr.
//
// Environment:
//
//	APP_ENV                 development (pretty logs) or production/staging (JSON logs)
//	LOG_LEVEL               debug, info, warn or error
//	LOG_FORMAT              json, text or pretty; overrides the APP_ENV default
//	ARGCHECK_WARN_POLICY    policy of "warn" params: silent or a log level name
//	ARGCHECK_FOLD_CHOICES   compare string choices case-insensitively
package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/argkit/pkg/config"
)

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
