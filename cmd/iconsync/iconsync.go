package main

import (
	"log"

	"github.com/icontools/iconsync/cmd/iconsync/cli"
	"github.com/icontools/iconsync/iconsync"
)

func main() {
	err := iconsync.LoadConfig("")
	if err != nil {
		log.Fatalf(err.Error())
	}

	cli.Execute()
}
