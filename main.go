package main

import "github.com/pagesec/pagesec-cli/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
