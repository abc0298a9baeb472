package main

import "github.com/jsphweid/bach/cmd"

func main() {
	cmd.Execute()
}
