package main

import "github.com/Goldlee001/CoeCarbon/internal/app"

func main() {
	app.Run()
}
