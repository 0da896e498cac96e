package main

import "github.com/nattawut/office-management/cmd"

func main() {
	cmd.Execute()
}
