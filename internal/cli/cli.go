// Package cli implements fogctl, the administrative command line of the fog
// controller. Each resource verb has one sub-command struct per action, so a
// flag is only accepted where it means something.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

type CLI struct {
	ConfigFile string `name:"config" short:"C" help:"Path to the configuration file."`
	Output     string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json or yaml)."`

	Catalog  CatalogCmd  `cmd:"" help:"Manage catalog items."`
	Registry RegistryCmd `cmd:"" help:"Manage container registries."`
	Iofog    IofogCmd    `cmd:"" name:"iofog" help:"Manage fog nodes."`
	Flow     FlowCmd     `cmd:"" help:"Manage flows."`
	User     UserCmd     `cmd:"" help:"Manage users."`
	Config   ConfigCmd   `cmd:"" help:"Manage the controller settings stored in the database."`
}

// Runtime is what a sub-command runs against.
type Runtime struct {
	Ctx      context.Context
	Services *Services
	Fs       afero.Fs
	Out      io.Writer
	Format   string
	// User is resolved from --user-id before user scoped commands run.
	User *models.User

	kctx *kong.Context
	set  map[string]bool
}

// IsSet reports whether the flag was given on the command line.
func (rt *Runtime) IsSet(flag string) bool {
	return rt.set[flag]
}

func (rt *Runtime) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if rt.Format == "yaml" {
		if b, err = yaml.JSONToYAML(b); err != nil {
			return err
		}
	} else {
		b = append(b, '\n')
	}
	_, err = rt.Out.Write(b)
	return err
}

type command interface {
	Run(rt *Runtime) error
}

// userScoped commands act on behalf of the user named by --user-id.
type userScoped interface {
	command
	userID() int64
}

// Opener connects the services. Commands run with the returned context,
// which carries the database connection; the returned func releases it.
type Opener func(ctx context.Context, configFile string) (context.Context, *Services, func(), error)

type App struct {
	Open Opener
	Fs   afero.Fs
	Out  io.Writer
	Err  io.Writer
}

// Execute parses args, runs the selected sub-command and returns the exit
// code for the process. Failures are logged, never returned.
func (a *App) Execute(ctx context.Context, args []string) int {
	var cli CLI
	exited, exitCode := false, 0
	parser, err := kong.New(&cli,
		kong.Name("fogctl"),
		kong.Description("Fog controller administration."),
		kong.Writers(a.Out, a.Err),
		kong.Exit(func(code int) { exited, exitCode = true, code }),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("invalid command definitions")
		return 1
	}

	kctx, err := parser.Parse(args)
	if exited {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(a.Err, "fogctl: error: %v\n", err)
		var pe *kong.ParseError
		if errors.As(err, &pe) && pe.Context != nil {
			_ = pe.Context.PrintUsage(true)
		}
		return 1
	}

	cmd, ok := kctx.Selected().Target.Addr().Interface().(command)
	if !ok {
		log.Ctx(ctx).Error().Str("command", kctx.Command()).Msg("command is not runnable")
		return 1
	}
	rt := &Runtime{
		Ctx:    ctx,
		Fs:     a.Fs,
		Out:    a.Out,
		Format: cli.Output,
		kctx:   kctx,
		set:    setFlags(kctx),
	}
	if _, isHelp := cmd.(*helpCmd); !isHelp {
		octx, svc, release, err := a.Open(ctx, cli.ConfigFile)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("unable to connect to the database")
			return 1
		}
		defer release()
		rt.Ctx, rt.Services = octx, svc
	}

	if err := dispatch(cmd)(rt); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("command", kctx.Command()).Msg("command failed")
		return 1
	}
	return 0
}

func setFlags(kctx *kong.Context) map[string]bool {
	set := map[string]bool{}
	for _, p := range kctx.Path {
		if p.Flag != nil {
			set[p.Flag.Name] = true
		}
	}
	return set
}

type runFunc func(rt *Runtime) error

func dispatch(cmd command) runFunc {
	run := cmd.Run
	if u, ok := cmd.(userScoped); ok {
		run = withUser(u.userID(), run)
	}
	return run
}

// withUser resolves the owning user before next runs. Nothing is created
// when the user cannot be loaded.
func withUser(id int64, next runFunc) runFunc {
	return func(rt *Runtime) error {
		user, err := rt.Services.Users.GetUser(rt.Ctx, id)
		if err != nil {
			return fmt.Errorf("resolving user %d: %w", id, err)
		}
		rt.User = user
		return next(rt)
	}
}

// helpCmd is the default action of every verb.
type helpCmd struct{}

func (h *helpCmd) Run(rt *Runtime) error {
	k := rt.kctx
	if n := len(k.Path); n > 0 && k.Path[n-1].Command != nil && k.Path[n-1].Command.Name == "help" {
		k.Path = k.Path[:n-1]
	}
	return k.PrintUsage(false)
}

func done(rt *Runtime, msg string) {
	log.Ctx(rt.Ctx).Info().Msg(msg)
}
