package main

import "ros-pip-setup/internal/cli"

func main() {
	cli.Execute()
}
