package command

import (
	"fyyur/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the Venue, Artist and Show tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		db, err := openDatabase(cfg, log)
		if err != nil {
			return err
		}
		return database.Close(db)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
