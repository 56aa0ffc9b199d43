package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reactome/releasefetch/cli/internal/output"
	"github.com/reactome/releasefetch/internal/config"
	"github.com/reactome/releasefetch/instanceedit"
)

var (
	creatorName    string
	personID       int64
	databasePrefix string
)

var instanceEditCmd = &cobra.Command{
	Use:   "instance-edit",
	Short: "Create an InstanceEdit in the curator or release database",
	Long: `Store a new InstanceEdit authored by a Person and noted "Inserted by <creator>".

The database connection comes from the curator.database.* settings, or the
release.database.* ones with --database release. The Person comes from
person_id, unless --person-id is given.`,
	Example: `  releasefetch instance-edit --creator "orphanet reference update" --config releasefetch.properties

  # Record the edit in the release database instead
  releasefetch instance-edit --creator "orphanet reference update" --database release --config releasefetch.properties`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		id := cfg.PersonID
		if personID > 0 {
			id = personID
		}
		if id <= 0 {
			return errors.New("no person id: set person_id or --person-id")
		}
		dbConfig, err := selectDatabase(cfg, databasePrefix)
		if err != nil {
			return err
		}

		adaptor, err := instanceedit.Open(ctx, dbConfig)
		if err != nil {
			return err
		}
		defer adaptor.Close()

		edit, err := instanceedit.Create(ctx, adaptor, id, creatorName)
		if err != nil {
			return err
		}
		logger.Info("Created InstanceEdit", "dbId", edit.DBID, "personId", id, "database", dbConfig.Name)

		formatter := output.Get(getOutputFormat(), cmd.OutOrStdout())
		return formatter.FormatInstanceEdit(edit)
	},
}

func init() {
	rootCmd.AddCommand(instanceEditCmd)
	instanceEditCmd.Flags().StringVar(&creatorName, "creator", "", "Name of the program or step making the change")
	instanceEditCmd.Flags().Int64Var(&personID, "person-id", 0, "DB_ID of the authoring Person (default: person_id from config)")
	instanceEditCmd.Flags().StringVar(&databasePrefix, "database", config.PrefixCurator, "Database to write to (curator or release)")
	_ = instanceEditCmd.MarkFlagRequired("creator")
}

// selectDatabase returns the named database, which must have a name set.
func selectDatabase(c *config.Config, prefix string) (instanceedit.DBConfig, error) {
	dbConfig, err := c.Database(prefix)
	if err != nil {
		return instanceedit.DBConfig{}, err
	}
	if dbConfig.Name == "" {
		return instanceedit.DBConfig{}, fmt.Errorf("no database name: set %s.database.name", prefix)
	}
	return dbConfig, nil
}
