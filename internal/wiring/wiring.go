// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.faultline.dev/faultline/internal/adapters/config"
	_ "go.faultline.dev/faultline/internal/adapters/logger"
	_ "go.faultline.dev/faultline/internal/adapters/process"
	_ "go.faultline.dev/faultline/internal/adapters/subst"
	_ "go.faultline.dev/faultline/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.faultline.dev/faultline/internal/app"
	_ "go.faultline.dev/faultline/internal/engine"
)
