package main

import (
	"gitship/cmd"
)

func main() {
	cmd.Execute()
}
