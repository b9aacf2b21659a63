package main

import (
	"estate/config"
	"estate/helper"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type migrationFunc func(cfg *config.Config) error

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the scheduling database schema",
		Long:          "Apply or roll back the SQL migrations under migrations/postgres against the write database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrationCmd("up", "Apply all pending migrations", helper.Up),
		newMigrationCmd("down", "Roll back the latest migration", helper.Down),
		newMigrationCmd("step-up", "Apply the next pending migration", helper.StepUp),
		newMigrationCmd("drop", "Roll back every migration", helper.Drop),
		newVersionCmd(),
		newForceCmd(),
	)

	return root
}

func newMigrationCmd(use, short string, run migrationFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(config.Get())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, dirty, err := helper.Version(config.Get())
			if err != nil {
				return err
			}

			state := "clean"
			if dirty {
				state = "dirty"
			}

			cmd.Printf("version %d (%s)\n", version, state)

			return nil
		},
	}
}

func newForceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "force <version>",
		Short: "Mark a schema version as applied after a failed migration",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			version, err := parseVersion(args[0])
			if err != nil {
				return err
			}

			return helper.Force(config.Get(), version)
		},
	}
}

// parseVersion accepts -1 (no version) or a migration number.
func parseVersion(raw string) (int, error) {
	version, err := strconv.Atoi(raw)
	if err != nil || version < -1 {
		return 0, fmt.Errorf("invalid migration version %q", raw)
	}

	return version, nil
}
