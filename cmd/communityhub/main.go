package main

import "communityhub/cmd/communityhub/cmd"

func main() {
	cmd.Execute()
}
