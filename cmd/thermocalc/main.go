// cmd/thermocalc/main.go
package main

import (
	"thermocalc/internal/appshell"
	"thermocalc/internal/calcapp"
)

func main() { appshell.Main(calcapp.RunContext) }
