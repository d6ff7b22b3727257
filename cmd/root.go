/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/authcheck/internal/iofs"
	"github.com/gnames/authcheck/internal/iologger"
	app "github.com/gnames/authcheck/pkg"
	"github.com/gnames/authcheck/pkg/config"
	"github.com/gnames/gn"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
	logFile io.Closer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = getRootCmd()

// getRootCmd builds the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "authcheck",
		Short:   "Checks conference submissions against an author quota",
		Long: `authcheck reconciles authors of conference submissions exported
from a review system (CSV or TSV) and reports authors that exceed
the submission quota.

Authors are identified by e-mail. Different e-mails of the same
person can be merged, suspicious identities flagged, and several
exports combined. The state is kept between runs in a local SQLite
file or in PostgreSQL.

Typical workflow:
  authcheck import papers.csv
  authcheck report --kind conflicts
  authcheck merge link --primary ann@uni.edu --email alee@gmail.com
  authcheck report --kind violations`,
		PersistentPreRunE: bootstrap,
		PersistentPostRun: shutdown,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "authcheck version" prefix
	cmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	cmd.Flags().BoolP("version", "V", false, "version for authcheck")
	quotaFlag(cmd)

	cmd.AddCommand(
		getImportCmd(),
		getDatasetsCmd(),
		getUseCmd(),
		getDropCmd(),
		getMergeCmd(),
		getFlagCmd(),
		getReportCmd(),
		getResetCmd(),
	)
	return cmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if logFile, err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// .env in the working directory is optional.
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		gn.Warn("Cannot read .env file: %s", err)
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, flagOptions(cmd)...)
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"quota", cfg.Quota,
		"store", cfg.Store.Backend,
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	if logFile != nil {
		logFile.Close()
	}
	var err error
	logFile, err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log)
	return err
}

func shutdown(_ *cobra.Command, _ []string) {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Allowed env variables are listed explicitly. They match the fields
	// of config.ToOptions().
	v.SetEnvPrefix("AUTHCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("quota", "AUTHCHECK_QUOTA")

	// Store configuration
	v.BindEnv("store.backend", "AUTHCHECK_STORE_BACKEND")
	v.BindEnv("store.path", "AUTHCHECK_STORE_PATH")

	// Database configuration
	v.BindEnv("database.host", "AUTHCHECK_DATABASE_HOST")
	v.BindEnv("database.port", "AUTHCHECK_DATABASE_PORT")
	v.BindEnv("database.user", "AUTHCHECK_DATABASE_USER")
	v.BindEnv("database.password", "AUTHCHECK_DATABASE_PASSWORD")
	v.BindEnv("database.database", "AUTHCHECK_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "AUTHCHECK_DATABASE_SSL_MODE")

	// Log configuration
	v.BindEnv("log.level", "AUTHCHECK_LOG_LEVEL")
	v.BindEnv("log.format", "AUTHCHECK_LOG_FORMAT")
	v.BindEnv("log.destination", "AUTHCHECK_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "AUTHCHECK_JOBS_NUMBER")

	v.AutomaticEnv()
}
