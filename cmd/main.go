package main

import (
	"os"

	"wellbeing-client/cmd/bootstrap"
)

func main() {
	os.Exit(bootstrap.Main())
}
