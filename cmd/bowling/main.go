// cmd/bowling/main.go
package main

import (
	"bowling/internal/app"
	"bowling/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
