package helper

//nolint:revive
import (
	"errors"
	"estate/config"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

type action string

const (
	actionUp     action = "up"
	actionStepUp action = "step-up"
	actionDown   action = "down"
	actionDrop   action = "drop"
)

// connectionURL targets the write database.
func connectionURL(cfg *config.Config) string {
	query := url.Values{}
	if cfg.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	return cfg.DB.Postgres.Write.URL(cfg.DB.Postgres.Prefix, query)
}

func open(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationSource, connectionURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("creating migrate instance: %w", err)
	}

	return mig, nil
}

func (a action) valid() bool {
	switch a {
	case actionUp, actionStepUp, actionDown, actionDrop:
		return true
	}

	return false
}

func run(cfg *config.Config, act action) error {
	if !act.valid() {
		return fmt.Errorf("unknown migration action %q", act)
	}

	mig, err := open(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch act {
	case actionUp:
		err = mig.Up()
	case actionStepUp:
		err = mig.Steps(1)
	case actionDown:
		err = mig.Steps(-1)
	case actionDrop:
		err = mig.Down()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running %s migration: %w", act, err)
	}

	version, dirty, verr := mig.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("reading migration version: %w", verr)
	}

	log.Info().Str("action", string(act)).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(cfg *config.Config) error {
	return run(cfg, actionUp)
}

func StepUp(cfg *config.Config) error {
	return run(cfg, actionStepUp)
}

func Down(cfg *config.Config) error {
	return run(cfg, actionDown)
}

func Drop(cfg *config.Config) error {
	return run(cfg, actionDrop)
}

// Version reports the applied schema version. A database without migrations is version 0.
func Version(cfg *config.Config) (uint, bool, error) {
	mig, err := open(cfg)
	if err != nil {
		return 0, false, err
	}

	defer mig.Close()

	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("reading migration version: %w", err)
	}

	return version, dirty, nil
}

// Force records version as applied and clears the dirty flag after a failed migration.
func Force(cfg *config.Config, version int) error {
	mig, err := open(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := mig.Force(version); err != nil {
		return fmt.Errorf("forcing migration version %d: %w", version, err)
	}

	log.Warn().Int("version", version).Msg("Migration version forced")

	return nil
}
