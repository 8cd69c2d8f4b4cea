package main

import "github.com/fidellopezm03/giakiemso-backend/cmd/cli"

func main() {
	cli.Execute()
}
