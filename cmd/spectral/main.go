package main

import (
	"github.com/sitesspectral/spectral-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
