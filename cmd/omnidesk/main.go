package main

import "github.com/pqrsdesk/omnidesk/cmd"

func main() {
	cmd.Execute()
}
