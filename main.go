package main

import "national-connect-backend/cmd"

func main() {
	cmd.Run()
}
