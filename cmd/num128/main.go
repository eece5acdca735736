// Command num128 is a calculator and inspector for 128-bit unsigned
// integers, built on the num package.
//
// Usage:
//
//	num128 calc [--base N] <a> <op> <b>
//	num128 conv [--from N] [--to N] [--lower] [--width N] [--comma] <value>
//	num128 float [--mode M] [--from-float] <value>
//	num128 bits <value>
//	num128 dump <value>
//	num128 info
//
// Values are parsed with a base prefix: 0x, 0o and 0b are recognised, and
// anything else is decimal. Use "--" before a negative float.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "num128"
	app.Usage = "128-bit unsigned integer calculator"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		calcCommand,
		convCommand,
		floatCommand,
		bitsCommand,
		dumpCommand,
		infoCommand,
	}
	return app
}
