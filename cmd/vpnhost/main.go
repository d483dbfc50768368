package main

import "github.com/Control-D-Inc/vpnhost/cmd/cli"

func main() {
	cli.Main()
}
