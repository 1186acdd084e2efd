package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/CrestNiraj12/terminalhn/app"
	"github.com/CrestNiraj12/terminalhn/domain"
	"github.com/CrestNiraj12/terminalhn/infra/browser"
	"github.com/CrestNiraj12/terminalhn/infra/config"
	dbg "github.com/CrestNiraj12/terminalhn/infra/debug"
	"github.com/CrestNiraj12/terminalhn/infra/hackernews"
	"github.com/CrestNiraj12/terminalhn/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// options are the command-line flags. kindSet and pageSizeSet record
// whether the flag was given, so config values only lose to explicit flags.
type options struct {
	kind        string
	kindSet     bool
	pageSize    int
	pageSizeSet bool
	configPath  string
	debugLog    string
}

func newRootCmd(run func(options) error) *cobra.Command {
	var opts options
	v, c, d := resolvedRuntimeVersionInfo(version, commit, date)

	cmd := &cobra.Command{
		Use:   "terminalhn",
		Short: "Browse Hacker News in the terminal",
		Long: `terminalhn is a keyboard-driven Hacker News reader.

Configuration is read from $XDG_CONFIG_HOME/terminalhn/config.yaml (or
TERMINALHN_CONFIG), then TERMINALHN_* environment variables, then flags.`,
		Version:       v,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.kindSet = cmd.Flags().Changed("kind")
			opts.pageSizeSet = cmd.Flags().Changed("page-size")
			return run(opts)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("terminalhn {{.Version}}\ncommit: %s\nbuilt: %s\n", c, d))

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "story list to open: best, new or top")
	cmd.Flags().IntVarP(&opts.pageSize, "page-size", "n", 0, fmt.Sprintf("stories per page (%d-%d)", app.MinPageSize, app.MaxPageSize))
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&opts.debugLog, "debug-log", "", "write debug log to this file (or set "+dbg.EnvVar+")")
	return cmd
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		if t := strings.TrimSpace(settings["vcs.time"]); t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

// applyFlags overlays explicit flags on cfg.
func applyFlags(cfg *config.Config, opts options) error {
	if opts.kindSet {
		kind, err := domain.ParseStoryKind(opts.kind)
		if err != nil {
			return fmt.Errorf("--kind: %w", err)
		}
		cfg.Kind = kind
	}
	if opts.pageSizeSet {
		cfg.PageSize = opts.pageSize
	}
	return cfg.Validate()
}

// startKind picks the list to open: an explicit flag wins, then the kind
// remembered from the last run, then the configured default.
func startKind(cfg config.Config, opts options, st config.UIState) domain.StoryKind {
	if opts.kindSet || st.Kind == "" {
		return cfg.Kind
	}
	kind, err := domain.ParseStoryKind(st.Kind)
	if err != nil {
		return cfg.Kind
	}
	return kind
}

func run(opts options) error {
	// 1. Debug log, before anything else logs.
	logPath := opts.debugLog
	if logPath == "" {
		logPath = os.Getenv(dbg.EnvVar)
	}
	closer, err := dbg.Start(logPath)
	if err != nil {
		return fmt.Errorf("debug log: %w", err)
	}
	defer closer.Close()

	// 2. Config: file, env, flags.
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := applyFlags(&cfg, opts); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	uiState, err := config.LoadUIState(cfg.UIStatePath)
	if err != nil {
		dbg.Log("ignoring ui state: %v", err)
	}

	// 3. Infrastructure.
	client := hackernews.NewClient(cfg.APIURL, cfg.UserAgent, cfg.Timeout)
	items := hackernews.NewService(client, cfg.SiteURL, cfg.FetchConcurrency)

	// 4. Root TUI model.
	statePath := cfg.UIStatePath
	rootModel := tui.NewApp(tui.Deps{
		Items:             items,
		Opener:            browser.NewEnvOpener(),
		Kind:              startKind(cfg, opts, uiState),
		PageSize:          cfg.PageSize,
		ShowRefreshErrors: cfg.UI.ShowRefreshErrors,
		SaveUIState: func(k domain.StoryKind) error {
			return config.SaveUIState(statePath, config.UIState{Kind: k.String()})
		},
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminalhn: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd(run).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
