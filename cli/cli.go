package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/jtl-lang/jtl/cli/cmd"
	"github.com/jtl-lang/jtl/pkg"
)

// CLI is the top-level command-line interface for jtl.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit."`

	Parse  cmd.Parse  `cmd:"" default:"withargs" help:"Parse documents and print them in a structured format"`
	Check  cmd.Check  `cmd:""                    help:"Validate documents without printing them"`
	Select cmd.Select `cmd:""                    help:"Print elements matching a predicate expression"`
}

// Run executes the jtl CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.Vars{"version": pkg.VersionString()}.
			CloneWith(cli.Pprof.vars()),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// flags that don't go through TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and
	// enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
