package di

import (
	"log"
	"os"

	"github.com/expocolorspace/colorspace-cli/internal/core/patch"
	"github.com/expocolorspace/colorspace-cli/internal/infrastructure/configfile"
	"github.com/expocolorspace/colorspace-cli/internal/interfaces/cli"
)

// Container holds all application dependencies
type Container struct {
	Locator  *configfile.Locator
	Store    *configfile.Store
	Detector *patch.Detector
	Logger   *log.Logger

	CLIContainer *cli.CLIContainer
}

// NewContainer creates and wires the dependency container
func NewContainer() *Container {
	container := &Container{
		Locator:  configfile.NewLocator(),
		Store:    configfile.NewStore(),
		Detector: patch.NewDetector(),
		Logger:   log.New(os.Stderr, "[colorspace] ", log.LstdFlags),
	}

	container.CLIContainer = &cli.CLIContainer{
		Locator:  container.Locator,
		Store:    container.Store,
		Detector: container.Detector,
		Logger:   container.Logger,
	}

	return container
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}
