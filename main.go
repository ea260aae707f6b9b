package main

import "cpu-scheduler-simulator/cmd"

func main() {
	cmd.ExecuteCLI()
}
