// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/catsync/internal/adapters/assetdb"
	_ "go.trai.ch/catsync/internal/adapters/cas"
	_ "go.trai.ch/catsync/internal/adapters/config"
	_ "go.trai.ch/catsync/internal/adapters/fs"
	_ "go.trai.ch/catsync/internal/adapters/logger"
	_ "go.trai.ch/catsync/internal/adapters/remote"
	_ "go.trai.ch/catsync/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/catsync/internal/app"
	_ "go.trai.ch/catsync/internal/engine/catalogbuild"
	_ "go.trai.ch/catsync/internal/engine/indexer"
	_ "go.trai.ch/catsync/internal/engine/resolver"
	_ "go.trai.ch/catsync/internal/engine/updater"
)
