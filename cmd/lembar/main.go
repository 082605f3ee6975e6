package main

import "github.com/sawala-tech/lembar/cmd/lembar/cmd"

func main() {
	cmd.Execute()
}
