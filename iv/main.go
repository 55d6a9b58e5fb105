// Command iv reports on a file of fixed income investments.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/investview/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// The .env file is optional, it only provides defaults for the environment.
	_ = godotenv.Load()

	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	// Answers the shell completion requests, and exits, when run by the shell.
	completion(commander).Complete(name)

	flag.Parse()

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}
