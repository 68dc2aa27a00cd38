package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"lifepath/internal/api"
	"lifepath/internal/assets"
	"lifepath/internal/config"
	"lifepath/internal/game"
	"lifepath/internal/legacy"
	"lifepath/internal/model"
	"lifepath/internal/save"
	"lifepath/internal/sim"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

type cli struct {
	configPath string
	dataDir    string
	slot       string
	verbose    bool
	out        io.Writer
}

func newRootCmd() *cobra.Command {
	c := &cli{out: os.Stdout}
	root := &cobra.Command{
		Use:           "lifepath",
		Short:         "Live a simulated life one year at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.out = cmd.OutOrStdout()
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "lifepath_config.yml", "path to the YAML config")
	root.PersistentFlags().StringVar(&c.dataDir, "data-dir", "", "directory holding saves (overrides the config)")
	root.PersistentFlags().StringVar(&c.slot, "slot", save.DefaultSlot, "save slot")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log engine activity to stderr")

	root.AddCommand(
		c.newCmd(),
		c.ageCmd(),
		c.statusCmd(),
		c.logCmd(),
		c.doCmd(),
		c.simulateCmd(),
		c.backupCmd(),
		c.restoreCmd(),
	)
	return root
}

func (c *cli) logger() *slog.Logger {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (c *cli) config() (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(c.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if c.dataDir != "" {
		cfg.Server.DataDir = c.dataDir
	}
	return cfg, cfg.Validate()
}

func envFor(cfg *config.Config, seed int64) sim.Env {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	env := sim.NewEnv(sim.NewSource(seed))
	env.Policy = cfg.Policy
	return env
}

// engine opens the slot's file save. Saves always land on disk here.
func (c *cli) engine(ctx context.Context) (*game.Engine, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	log := c.logger()
	repo, err := save.NewFileRepo(cfg.Server.DataDir, log)
	if err != nil {
		return nil, err
	}
	settings := model.DefaultSettings()
	settings.AutoSave = true
	settings.PregnancyEnabled = cfg.Game.PregnancyEnabled
	e := game.New(game.Options{
		Env:      envFor(cfg, cfg.Game.Seed),
		Repo:     repo,
		Slot:     c.slot,
		Logger:   log,
		Settings: &settings,
	})
	if err := e.Load(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

func (c *cli) newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new life, replacing the one in the slot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := c.engine(cmd.Context())
			if err != nil {
				return err
			}
			s, err := e.Start(cmd.Context())
			if err != nil {
				return err
			}
			c.printEvents(s.Events)
			c.printStatus(s)
			return nil
		},
	}
}

func (c *cli) ageCmd() *cobra.Command {
	var years int
	cmd := &cobra.Command{
		Use:   "age",
		Short: "Age the character",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := c.engine(cmd.Context())
			if err != nil {
				return err
			}
			ys, err := e.AgeYears(cmd.Context(), years)
			for _, y := range ys {
				fmt.Fprintln(c.out, bold(fmt.Sprintf("Age %d", y.Character.Age)))
				c.printEvents(y.Events)
			}
			if err != nil {
				return err
			}
			s := e.State()
			if s.Phase() == model.PhaseDeceased {
				c.printSummary(*s.Character)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&years, "years", "n", 1, "years to age, at most 10")
	return cmd
}

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the character",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := c.engine(cmd.Context())
			if err != nil {
				return err
			}
			c.printStatus(e.State())
			return nil
		},
	}
}

func (c *cli) logCmd() *cobra.Command {
	var last int
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the life's event log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := c.engine(cmd.Context())
			if err != nil {
				return err
			}
			events := e.State().Events
			if last > 0 && len(events) > last {
				events = events[len(events)-last:]
			}
			c.printEvents(events)
			return nil
		},
	}
	cmd.Flags().IntVar(&last, "last", 20, "show only the last n events (0 for all)")
	return cmd
}

func (c *cli) doCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <cmd> [key=value...]",
		Short: "Run an action, e.g. `lifepath do job.apply jobId=cashier`",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseArgs(args[1:])
			if err != nil {
				return err
			}
			e, err := c.engine(cmd.Context())
			if err != nil {
				return err
			}
			out, err := api.Execute(cmd.Context(), e, args[0], params)
			if out.Event != nil {
				c.printEvents([]model.Event{*out.Event})
			}
			return err
		},
	}
}

// parseArgs turns key=value pairs into command arguments. Numbers and
// booleans keep their JSON types.
func parseArgs(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("argument %q is not key=value", p)
		}
		switch {
		case v == "true" || v == "false":
			out[k] = v == "true"
		default:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				out[k] = f
			} else {
				out[k] = v
			}
		}
	}
	return out, nil
}

func (c *cli) simulateCmd() *cobra.Command {
	var (
		seed  int64
		quiet bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Live a whole fresh life without saving it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = cfg.Game.Seed
			}
			settings := model.DefaultSettings()
			settings.PregnancyEnabled = cfg.Game.PregnancyEnabled
			e := game.New(game.Options{
				Env:      envFor(cfg, seed),
				Repo:     save.NewMemoryRepo(c.logger()),
				Logger:   c.logger(),
				Settings: &settings,
			})
			return simulate(cmd.Context(), e, c, quiet)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed; 0 uses the config seed or the clock")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the summary")
	return cmd
}

// maxLifespan stops a simulation that somehow never ends.
const maxLifespan = 150

func simulate(ctx context.Context, e *game.Engine, c *cli, quiet bool) error {
	s, err := e.Start(ctx)
	if err != nil {
		return err
	}
	if !quiet {
		c.printEvents(s.Events)
	}
	for e.State().Phase() == model.PhaseAlive && e.State().Character.Age < maxLifespan {
		y, err := e.AgeUp(ctx)
		if err != nil {
			return err
		}
		if !quiet {
			c.printEvents(y.Events)
		}
	}
	s = e.State()
	if s.Phase() == model.PhaseDeceased {
		c.printSummary(*s.Character)
	} else {
		c.printStatus(s)
	}
	return nil
}

func (c *cli) backupCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Archive every save in the data directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if out == "" {
				out = filepath.Join("backups", "lifepath-"+time.Now().UTC().Format("20060102T150405Z")+".tar.gz")
			}
			n, err := save.Backup(cfg.Server.DataDir, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s (%d files)\n", out, n)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "archive path (.tar.gz)")
	return cmd
}

func (c *cli) restoreCmd() *cobra.Command {
	var archive, target string
	var verify string
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Unpack a backup archive",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if archive == "" {
				return fmt.Errorf("--archive is required")
			}
			n, err := save.Restore(archive, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "restored %d files into %s\n", n, target)
			if verify == "" {
				return nil
			}
			want, err := save.Digest(verify)
			if err != nil {
				return err
			}
			got, err := save.Digest(target)
			if err != nil {
				return err
			}
			if want != got {
				return fmt.Errorf("digest mismatch: %s has %s, restore has %s", verify, want, got)
			}
			fmt.Fprintln(c.out, green("digest ok ")+gray(got))
			return nil
		},
	}
	cmd.Flags().StringVar(&archive, "archive", "", "archive to restore")
	cmd.Flags().StringVar(&target, "target-dir", "data-restored", "directory to restore into")
	cmd.Flags().StringVar(&verify, "verify-against", "", "compare the restore with this directory")
	return cmd
}

func (c *cli) printEvents(events []model.Event) {
	for _, ev := range events {
		title := ev.Title
		switch ev.Type {
		case model.EventPositive:
			title = green(title)
		case model.EventNegative:
			title = red(title)
		default:
			title = yellow(title)
		}
		fmt.Fprintf(c.out, "  %s %s %s\n", gray(fmt.Sprintf("[%3d]", ev.Age)), title, gray(ev.Description))
	}
}

func (c *cli) printStatus(s model.GameState) {
	if s.Character == nil {
		fmt.Fprintln(c.out, "No life in progress. Run `lifepath new`.")
		return
	}
	ch := *s.Character
	state := green("alive")
	if !ch.IsAlive {
		state = red("deceased")
	}
	fmt.Fprintf(c.out, "%s, %d, %s (%s)\n", bold(ch.Name), ch.Age, ch.Country, state)
	st := ch.Stats
	fmt.Fprintf(c.out, "  health %d  happiness %d  smarts %d  looks %d  reputation %d\n",
		st.Health, st.Happiness, st.Smarts, st.Looks, st.Reputation)
	fmt.Fprintf(c.out, "  money %s  net worth %s\n", model.Dollars(st.Money), model.Dollars(assets.NetWorth(ch)))
	if ch.Career.HasJob {
		fmt.Fprintf(c.out, "  job %s (level %d)\n", ch.Career.JobTitle, ch.Career.JobLevel)
	}
	if ch.IsInPrison {
		fmt.Fprintln(c.out, "  "+red("in prison"))
	}
	if r, ok := ch.ActiveRelationship(); ok {
		fmt.Fprintf(c.out, "  dating %s\n", r.Name)
	}
	if n := len(ch.LivingChildren()); n > 0 {
		fmt.Fprintf(c.out, "  children %d\n", n)
	}
}

func (c *cli) printSummary(ch model.Character) {
	fmt.Fprintf(c.out, "%s died at %d: %s\n", bold(ch.Name), ch.DeathAge, ch.DeathCause)
	fmt.Fprintf(c.out, "  legacy %d, %s\n", ch.LegacyScore, legacy.Describe(ch.LegacyScore))
	if ch.LifeSummary == nil {
		return
	}
	sum := ch.LifeSummary
	fmt.Fprintf(c.out, "  wealth %s  jobs %d  children %d  achievements %d\n",
		model.Dollars(sum.TotalWealth), len(sum.JobsHeld), sum.ChildrenCount, sum.AchievementsUnlocked)
	for _, ev := range sum.KeyEvents {
		fmt.Fprintf(c.out, "  %s %s\n", gray(fmt.Sprintf("[%3d]", ev.Age)), ev.Title)
	}
}
