// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for the Pontifex
// application using the Cobra library. It defines the root command,
// subcommands (like encrypt, decrypt, keygen), flags, and the main
// entry point for execution.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"runtime/debug"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pontifex-team/pontifex/buildvars"
	"github.com/pontifex-team/pontifex/config"
	"github.com/pontifex-team/pontifex/core/keys"
	"github.com/pontifex-team/pontifex/i18n"
	"github.com/pontifex-team/pontifex/internal/logging"
	"github.com/pontifex-team/pontifex/ui/tui"
)

var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	// Load optional config file argument from cli
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	// Diagnostic: current working directory and PONTIFEX-related env vars
	if wd, wderr := os.Getwd(); wderr == nil {
		logging.Debugf("startup cwd: %s", wd)
	}
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "PONTIFEX_") || strings.HasPrefix(e, "CONFIG") {
			logging.Debugf("env: %s", e)
		}
	}

	// Load config
	defaults := map[string]any{
		"language":  "en",
		"keys.file": "",
		"clipboard": false,
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	// A "file not found" error is expected on first run, so we handle it specifically.
	// Other errors during loading are usually fatal, but allow debugging when the
	// error is due to control characters in YAML (so `pontifex debug` can run).
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// This is the first run, or the config file was deleted. Create a default one.
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			// Log a warning but don't fail, as the app can run on defaults.
			log.Warnf("Warning: could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		// If it's a YAML parse error caused by control characters, log a
		// user-friendly message pointing users at the `debug` command, but
		// continue running on defaults so the app is still usable.
		if strings.Contains(err.Error(), "control characters are not allowed") {
			used := viper.ConfigFileUsed()
			if used == "" {
				log.Errorf("The config appears to be invalid (parse error). Run 'pontifex debug' to inspect configuration files: %v", err)
			} else {
				log.Errorf("The config you are using (%s) appears to be invalid: %v. Run 'pontifex debug' to inspect and fix it.", used, err)
			}
		} else {
			return fmt.Errorf("error loading config: %w", err)
		}
	}

	// If no config file was used (viper didn't load one), always write a default
	// config for the user so subsequent runs have a persisted file to inspect.
	if viper.ConfigFileUsed() == "" {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			log.Warnf("Warning: could not write default config file: %v", writeErr)
		} else {
			log.Info("Wrote default config to user config path")
		}
	}

	// Post-process config to ensure critical values are not empty, falling
	// back to defaults. This handles cases where the user's config file has
	// empty values for these fields. We also update viper's internal state
	// to ensure subsequent saves are correct.
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
		viper.Set("language", appConfig.Language)
	}

	// Initialize i18n
	i18n.Init(appConfig.Language)

	return nil
}

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	rootCmd := NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		return err
	}

	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Load optional config file argument from cli
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			// This is unlikely if Changed() is true, but good practice.
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil // Return the valid path
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pontifex",
		Short: "Pontifex is the Solitaire stream cipher for your terminal.",
		Long: `Pontifex encrypts and decrypts messages with the Solitaire cipher,
the hand cipher built on an ordinary deck of 54 playing cards. Keys are
deck orderings: derive one from a passphrase, load one from a key file,
or shuffle a real deck and type it in.

Running without a subcommand will launch the interactive TUI.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				v, c, d := resolveBuildVersion(nil)
				compositeVersion := v
				if c != "" && c != "dev" {
					compositeVersion = compositeVersion + " (" + c + ")"
				}
				if d != "" {
					compositeVersion = compositeVersion + " built: " + d
				}
				fmt.Printf("%s\n", compositeVersion)
				os.Exit(0)
			}
			logging.SetDebug(verbose)
			return setupDefaultServices(cmd, args)
		},
		Run: func(cmd *cobra.Command, args []string) {
			// Config and i18n are already initialized by PersistentPreRunE,
			// so we can just run the TUI.
			tui.Run(appConfig)
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	// Register debug command
	cmd.AddCommand(debugCmd)

	// Define flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)

	// Add subcommand flags
	applyCryptFlags(encryptCmd)
	applyCryptFlags(decryptCmd)
	registerKeyCommands()
	if keygenCmd.Flags().Lookup("numeric") == nil {
		keygenCmd.Flags().BoolP("numeric", "n", false, "Write the key as 54 numbers instead of card codes")
		keygenCmd.Flags().BoolP("force", "f", false, "Overwrite an existing key file without asking")
	}

	// Add a lightweight `version` subcommand so users and CI can run `pontifex version`.
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			// Re-resolve build info so the subcommand shows the same values
			resolvedVersion := buildvars.VersionOrDefault("dev")
			resolvedCommit := buildvars.GitCommit
			resolvedDate := buildvars.BuildDate
			if info, ok := debug.ReadBuildInfo(); ok {
				if info.Main.Version != "" && info.Main.Version != "(devel)" {
					resolvedVersion = info.Main.Version
				}
				for _, s := range info.Settings {
					switch s.Key {
					case "vcs.revision":
						if s.Value != "" {
							resolvedCommit = s.Value
						}
					case "vcs.time":
						if s.Value != "" {
							resolvedDate = s.Value
						}
					}
				}
			}

			fmt.Printf("version: %s\n", resolvedVersion)
			if resolvedCommit != "" {
				fmt.Printf("commit: %s\n", resolvedCommit)
			}
			if resolvedDate != "" {
				fmt.Printf("built: %s\n", resolvedDate)
			}
		},
	}

	// Add subcommands to the newly created root command.
	cmd.AddCommand(
		encryptCmd,
		decryptCmd,
		keygenCmd,
		keyCmd,
		versionCmd,
	)

	return cmd
}

// resolveBuildVersion computes the best-available version, commit and build
// date from ldflags-injected buildvars and runtime build info.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := buildvars.GitCommit
	if resolvedCommit == "" {
		resolvedCommit = "dev"
	}
	resolvedDate := buildvars.BuildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/pontifex-team/pontifex" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, if no version was discovered, but a commit was
	// provided via ldflags, show that to aid support.
	if resolvedVersion == "dev" && buildvars.GitCommit != "" {
		resolvedVersion = buildvars.GitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

// logWarnings surfaces key diagnostics on stderr without failing the command.
func logWarnings(warnings []keys.Warning) {
	for _, w := range warnings {
		switch w.Code {
		case keys.WarnShortPassphrase:
			logging.Warnf("%s", i18n.T("keys.warn_short_passphrase", w.Length, keys.MinPassphraseChars))
		case keys.WarnWeakGenerator:
			logging.Warnf("%s", i18n.T("keys.warn_weak_generator"))
		default:
			logging.Warnf("%s", w)
		}
	}
}

func promptForConfirmation(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	return strings.TrimSpace(strings.ToLower(answer))
}
