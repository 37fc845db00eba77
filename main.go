package main

import (
	"github.com/devboot-cli/devboot/cmd"
)

func main() {
	cmd.Execute()
}
