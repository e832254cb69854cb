package main

import "github.com/Egor213/PgDash/internal/cli"

func main() {
	cli.Execute()
}
