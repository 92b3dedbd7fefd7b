package main

import "github.com/KaramelBytes/moonbase-cli/cmd"

func main() {
	cmd.Execute()
}
