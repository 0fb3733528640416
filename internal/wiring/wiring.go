// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/picon/internal/adapters/cache"
	_ "go.trai.ch/picon/internal/adapters/config"
	_ "go.trai.ch/picon/internal/adapters/fs"
	_ "go.trai.ch/picon/internal/adapters/imaging"
	_ "go.trai.ch/picon/internal/adapters/logger"
	_ "go.trai.ch/picon/internal/adapters/shell"
	_ "go.trai.ch/picon/internal/adapters/svg"
	// Register app, engine, and ui nodes.
	_ "go.trai.ch/picon/internal/app"
	_ "go.trai.ch/picon/internal/engine/planner"
	_ "go.trai.ch/picon/internal/ui/report"
)
