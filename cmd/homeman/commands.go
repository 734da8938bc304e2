package homeman

import (
	"fmt"

	"github.com/arthur-debert/homeman/internal/version"
	"github.com/arthur-debert/homeman/pkg/commands"
	"github.com/arthur-debert/homeman/pkg/commands/install"
	"github.com/arthur-debert/homeman/pkg/commands/list"
	"github.com/arthur-debert/homeman/pkg/commands/status"
	"github.com/arthur-debert/homeman/pkg/commands/uninstall"
	"github.com/arthur-debert/homeman/pkg/config"
	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/logging"
	"github.com/arthur-debert/homeman/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity int
	root      string
	home      string
}

// environment loads configuration, applying --root and --home last
func (g *globalOptions) environment() (*commands.Environment, error) {
	overrides := map[string]interface{}{}
	if g.root != "" {
		overrides[config.KeyPackageRoot] = g.root
	}
	if g.home != "" {
		overrides[config.KeyHome] = g.home
	}

	cfg, err := config.Load(config.LoadOptions{Overrides: overrides})
	if err != nil {
		return nil, err
	}
	env, err := commands.NewEnvironment(cfg)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("package_root", env.Paths.PackageRoot()).
		Str("home", env.Paths.Home()).
		Str("linker", cfg.Linker.Command).
		Msg("Environment ready")
	return env, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "homeman",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(log.Logger, cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.root, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVar(&opts.home, "home", "", MsgFlagHome)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newInstallCmd(opts))
	rootCmd.AddCommand(newUninstallCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if err := installTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// packageNamesCompletion provides shell completion for package names
func packageNamesCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		env, err := opts.environment()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		pkgs, err := env.Registry.ListAll()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		seen := make(map[string]bool, len(args))
		for _, a := range args {
			seen[a] = true
		}
		var names []string
		for _, pkg := range pkgs {
			if !seen[pkg.Name] {
				names = append(names, pkg.Name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	var (
		verbose bool
		output  string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			env, err := opts.environment()
			if err != nil {
				return err
			}

			result, err := list.ListPackages(env, list.Options{Verbose: verbose})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != OutputText {
				if !verbose {
					return writeStructured(out, output, newListOutput(result.Packages))
				}
				reports := make([]commands.PackageReport, 0, len(result.States))
				for _, state := range result.States {
					reports = append(reports, commands.NewPackageReport(state))
				}
				return writeStructured(out, output, reports)
			}

			if len(result.Packages) == 0 {
				return nil
			}
			renderer := style.NewRenderer(out)
			if !verbose {
				fmt.Fprintln(out, renderer.RenderPackageList(result.Packages))
				return nil
			}
			for _, state := range result.States {
				fmt.Fprintln(out, renderer.RenderState(state))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, MsgFlagListV)
	cmd.Flags().StringVarP(&output, "output", "o", OutputText, MsgFlagOutput)
	return cmd
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:               "status <package>",
		Short:             MsgStatusShort,
		Long:              MsgStatusLong,
		Example:           MsgStatusExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: packageNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			env, err := opts.environment()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := style.NewRenderer(out)

			state, err := status.PackageStatus(env, status.Options{Name: args[0]})
			if err != nil {
				if errors.IsErrorCode(err, errors.ErrPackageNotFound) {
					printMissing(out, renderer, err)
					return reported(err)
				}
				return err
			}

			if output != OutputText {
				return writeStructured(out, output, commands.NewPackageReport(state))
			}
			fmt.Fprintln(out, renderer.RenderState(state))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", OutputText, MsgFlagOutput)
	return cmd
}

// operationRunner is InstallPackages or UninstallPackages
type operationRunner func(cmd *cobra.Command, env *commands.Environment, o commands.OperationOptions) (*commands.OperationResult, error)

func newOperationCmd(opts *globalOptions, use, short, long, example string, run operationRunner) *cobra.Command {
	var (
		all    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:               use,
		Short:             short,
		Long:              long,
		Example:           example,
		GroupID:           "core",
		ValidArgsFunction: packageNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return errors.New(errors.ErrInvalidInput, MsgErrNoPackages)
			}
			env, err := opts.environment()
			if err != nil {
				return err
			}

			result, err := run(cmd, env, commands.OperationOptions{Names: args, All: all, DryRun: dryRun})
			out := cmd.OutOrStdout()
			return printOperation(out, style.NewRenderer(out), result, err)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	return cmd
}

func newInstallCmd(opts *globalOptions) *cobra.Command {
	return newOperationCmd(opts, "install [packages...]", MsgInstallShort, MsgInstallLong, MsgInstallExample,
		func(cmd *cobra.Command, env *commands.Environment, o commands.OperationOptions) (*commands.OperationResult, error) {
			return install.InstallPackages(cmd.Context(), env, o)
		})
}

func newUninstallCmd(opts *globalOptions) *cobra.Command {
	return newOperationCmd(opts, "uninstall [packages...]", MsgUninstallShort, MsgUninstallLong, MsgUninstallExample,
		func(cmd *cobra.Command, env *commands.Environment, o commands.OperationOptions) (*commands.OperationResult, error) {
			return uninstall.UninstallPackages(cmd.Context(), env, o)
		})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersion+"\n", version.Version, version.Commit, version.Date)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return errors.New(errors.ErrInternal, "help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
