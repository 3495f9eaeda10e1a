// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/lineagetools/taxlin/internal/adapters/cache"
	_ "github.com/lineagetools/taxlin/internal/adapters/config"
	_ "github.com/lineagetools/taxlin/internal/adapters/logger"
	// Register app and engine nodes.
	_ "github.com/lineagetools/taxlin/internal/app"
	_ "github.com/lineagetools/taxlin/internal/engine/formatter"
)
