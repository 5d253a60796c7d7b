// Package cli provides the command-line interface for inplace.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	DemoCommand    DemoCommand    `command:"demo" subcommands-optional:"true"`
	ServeCommand   ServeCommand   `command:"serve" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
