package main

import "github.com/influmatch/influmatch-go/cmd/influmatch/cmd"

func main() {
	cmd.Execute()
}
