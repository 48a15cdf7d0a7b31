package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/urfave/cli/v2"
)

var logger = logging.NewJSON(logging.LevelInfo)

func main() {
	defer func() { _ = logger.Sync() }()

	if err := newApp().Run(os.Args); err != nil {
		logger.Error("migration failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "migration",
		Usage: "apply event-scoring schema migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db-url",
				Usage:   "postgres connection url",
				EnvVars: []string{"DB_URL"},
			},
			&cli.StringFlag{
				Name:    "dir",
				Usage:   "migrations directory",
				EnvVars: []string{"MIGRATIONS_DIR", "MIGRATIONS_PATH"},
			},
			&cli.BoolFlag{
				Name:    "binary-parameters",
				Usage:   "append binary_parameters=yes to the connection url",
				EnvVars: []string{"DB_BINARY_PARAMETERS"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: withMigrator(func(_ *cli.Context, m *migrate.Migrate) error {
					if err := ignoreNoChange(m.Up()); err != nil {
						return err
					}
					logger.Info("migrations applied")
					return nil
				}),
			},
			{
				Name:      "down",
				Usage:     "roll back migrations",
				ArgsUsage: "[steps]",
				Action: withMigrator(func(c *cli.Context, m *migrate.Migrate) error {
					steps, err := parseSteps(c.Args().First())
					if err != nil {
						return err
					}
					if err := ignoreNoChange(m.Steps(-steps)); err != nil {
						return err
					}
					logger.Info("migrations rolled back", "steps", steps)
					return nil
				}),
			},
			{
				Name:  "version",
				Usage: "print the current schema version",
				Action: withMigrator(func(_ *cli.Context, m *migrate.Migrate) error {
					version, dirty, err := m.Version()
					if errors.Is(err, migrate.ErrNilVersion) {
						fmt.Println("version: none")
						fmt.Println("dirty: false")
						return nil
					}
					if err != nil {
						return fmt.Errorf("read version: %w", err)
					}
					fmt.Printf("version: %d\n", version)
					fmt.Printf("dirty: %t\n", dirty)
					return nil
				}),
			},
			{
				Name:      "force",
				Usage:     "set the schema version without running migrations",
				ArgsUsage: "<version>",
				Action: withMigrator(func(c *cli.Context, m *migrate.Migrate) error {
					version, err := parseVersion(c.Args().First())
					if err != nil {
						return err
					}
					if err := m.Force(version); err != nil {
						return fmt.Errorf("force version %d: %w", version, err)
					}
					logger.Info("schema version forced", "version", version)
					return nil
				}),
			},
			{
				Name:      "goto",
				Aliases:   []string{"migrate"},
				Usage:     "migrate up or down to a target version",
				ArgsUsage: "<version>",
				Action: withMigrator(func(c *cli.Context, m *migrate.Migrate) error {
					target, err := parseTarget(c.Args().First())
					if err != nil {
						return err
					}
					if err := ignoreNoChange(m.Migrate(target)); err != nil {
						return err
					}
					logger.Info("migrated to version", "version", target)
					return nil
				}),
			},
		},
	}
}

func withMigrator(action func(*cli.Context, *migrate.Migrate) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		dbURL := strings.TrimSpace(c.String("db-url"))
		if dbURL == "" {
			return fmt.Errorf("DB_URL is required")
		}
		dbURL = normalizeDBURL(dbURL, c.Bool("binary-parameters"))

		migrationsDir, err := resolveMigrationsDir(c.String("dir"))
		if err != nil {
			return err
		}

		sourceURL := "file://" + filepath.ToSlash(migrationsDir)
		m, err := migrate.New(sourceURL, dbURL)
		if err != nil {
			return fmt.Errorf("create migrator: %w", err)
		}
		defer closeMigrator(m)

		logger.Info("migration source resolved", "source", sourceURL)
		return action(c, m)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func parseSteps(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", raw, err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, fmt.Errorf("version argument is required")
	}
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < -1 {
		return 0, fmt.Errorf("version must be >= -1")
	}

	return int(value), nil
}

func parseTarget(raw string) (uint, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, fmt.Errorf("target version argument is required")
	}
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source failed", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db failed", "error", dbErr)
	}
}

func resolveMigrationsDir(explicit string) (string, error) {
	candidates := []string{
		strings.TrimSpace(explicit),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked --dir, ./db/migrations, /app/db/migrations)")
}

func normalizeDBURL(raw string, binaryParameters bool) string {
	if !binaryParameters {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("binary_parameters") == "" {
		query.Set("binary_parameters", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}
