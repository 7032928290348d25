package main

import "github.com/jsphweid/harmondex/cmd"

func main() {
	cmd.Execute()
}
