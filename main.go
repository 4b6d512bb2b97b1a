package main

import "github.com/KaramelBytes/wellcorr/cmd"

func main() {
	cmd.Execute()
}
