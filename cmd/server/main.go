package main

import "farmops/internal/app/server"

func main() {
	server.Run()
}
