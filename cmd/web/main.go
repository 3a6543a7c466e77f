package main

import "github.com/trapham24065/api-contact-book/internal/app"

func main() {
	app.Run()
}
