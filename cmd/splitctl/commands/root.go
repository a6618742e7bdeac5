package commands

import (
	"database/sql"
	"encoding/json"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fkhayef/splitledger/internal/app"
	"github.com/fkhayef/splitledger/internal/config"
	"github.com/fkhayef/splitledger/internal/database"
	"github.com/fkhayef/splitledger/pkg/logging"
)

type options struct {
	driver      string
	databaseURL string
	sqlitePath  string
	logLevel    string

	cfg *config.Config
	db  *sql.DB
}

// Execute runs splitctl with the process arguments
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "splitctl",
		Short:        "Manage and inspect the shared-expense ledger",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg := config.Load()
			if opts.driver != "" {
				cfg.DBDriver = opts.driver
			}
			if opts.databaseURL != "" {
				cfg.DatabaseURL = opts.databaseURL
			}
			if opts.sqlitePath != "" {
				cfg.SQLitePath = opts.sqlitePath
			}
			if opts.logLevel != "" {
				cfg.LogLevel = opts.logLevel
			}

			logging.Setup(cfg.LogLevel)
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.db != nil {
				return opts.db.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.driver, "driver", "", "database driver: postgres or sqlite (default $DB_DRIVER)")
	root.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "postgres connection URL (default $DATABASE_URL)")
	root.PersistentFlags().StringVar(&opts.sqlitePath, "sqlite-path", "", "sqlite database file (default $SQLITE_PATH)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (default $LOG_LEVEL)")

	root.AddCommand(
		migrateCmd(opts),
		seedCmd(opts),
		balancesCmd(opts),
		contextCmd(opts),
	)
	return root
}

// app migrates the database to the latest schema and wires the services
func (o *options) app() (*app.App, error) {
	if err := database.Migrate(o.cfg.DBDriver, o.cfg.DSN()); err != nil {
		return nil, err
	}

	db, err := database.Open(o.cfg)
	if err != nil {
		return nil, err
	}
	o.db = db

	return app.New(o.cfg, db)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
