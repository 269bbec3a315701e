package main

import (
	"github.com/Manu343726/tdesc/cmd"
)

func main() {
	cmd.Execute()
}
