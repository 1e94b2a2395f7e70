package main

import "stackwatch/cmd"

func main() {
	cmd.Execute()
}
