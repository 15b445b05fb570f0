package main

import (
	"fmt"
	"os"

	"nethemba/revolut-camt/cmd/convert"
	"nethemba/revolut-camt/cmd/inspect"
	"nethemba/revolut-camt/cmd/profile"
	"nethemba/revolut-camt/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(inspect.Cmd)
	root.Cmd.AddCommand(profile.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
