package main

import (
	"github.com/expocolorspace/colorspace-cli/internal/interfaces/cli"
	"github.com/expocolorspace/colorspace-cli/internal/interfaces/di"
)

func main() {
	container := di.NewContainer()
	cli.Execute(container.GetCLIContainer())
}
