package postgres

import (
	"fmt"
	"time"
)

const (
	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	errUserNotFound      = "user not found"
	errProjectNotFound   = "project not found"
	errBlueprintNotFound = "blueprint not found"

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"

	errFailedCreateUserFmt = "failed to create user: %w"
	errFailedGetUserFmt    = "failed to get user: %w"

	errFailedCreateProjectFmt      = "failed to create project: %w"
	errFailedGetProjectFmt         = "failed to get project: %w"
	errFailedListProjectsFmt       = "failed to list projects: %w"
	errFailedScanProjectFmt        = "failed to scan project: %w"
	errFailedUpdateProjectFmt      = "failed to update project: %w"
	errFailedDeleteProjectFmt      = "failed to delete project: %w"
	errFailedCountProjectStatusFmt = "failed to count projects by status: %w"

	errFailedCreateBlueprintFmt = "failed to create blueprint: %w"
	errFailedGetBlueprintFmt    = "failed to get blueprint: %w"
	errFailedListBlueprintsFmt  = "failed to list blueprints: %w"
	errFailedScanBlueprintFmt   = "failed to scan blueprint: %w"
	errFailedDeleteBlueprintFmt = "failed to delete blueprint: %w"
	errFailedCountBlueprintsFmt = "failed to count blueprints: %w"

	errFailedInsertActivityFmt = "failed to insert activity log: %w"
	errFailedListActivityFmt   = "failed to list activity logs: %w"
	errFailedScanActivityFmt   = "failed to scan activity log: %w"
	errFailedCountActivityFmt  = "failed to count activity logs: %w"
)

var (
	errFailedParseDatabaseConfig  = func(err error) error { return fmt.Errorf(errFailedParseDatabaseConfigFmt, err) }
	errFailedCreateConnectionPool = func(err error) error { return fmt.Errorf(errFailedCreateConnectionPoolFmt, err) }
	errFailedPingDatabase         = func(err error) error { return fmt.Errorf(errFailedPingDatabaseFmt, err) }

	errFailedCreateUser = func(err error) error { return fmt.Errorf(errFailedCreateUserFmt, err) }
	errFailedGetUser    = func(err error) error { return fmt.Errorf(errFailedGetUserFmt, err) }

	errFailedCreateProject      = func(err error) error { return fmt.Errorf(errFailedCreateProjectFmt, err) }
	errFailedGetProject         = func(err error) error { return fmt.Errorf(errFailedGetProjectFmt, err) }
	errFailedListProjects       = func(err error) error { return fmt.Errorf(errFailedListProjectsFmt, err) }
	errFailedScanProject        = func(err error) error { return fmt.Errorf(errFailedScanProjectFmt, err) }
	errFailedUpdateProject      = func(err error) error { return fmt.Errorf(errFailedUpdateProjectFmt, err) }
	errFailedDeleteProject      = func(err error) error { return fmt.Errorf(errFailedDeleteProjectFmt, err) }
	errFailedCountProjectStatus = func(err error) error { return fmt.Errorf(errFailedCountProjectStatusFmt, err) }

	errFailedCreateBlueprint = func(err error) error { return fmt.Errorf(errFailedCreateBlueprintFmt, err) }
	errFailedGetBlueprint    = func(err error) error { return fmt.Errorf(errFailedGetBlueprintFmt, err) }
	errFailedListBlueprints  = func(err error) error { return fmt.Errorf(errFailedListBlueprintsFmt, err) }
	errFailedScanBlueprint   = func(err error) error { return fmt.Errorf(errFailedScanBlueprintFmt, err) }
	errFailedDeleteBlueprint = func(err error) error { return fmt.Errorf(errFailedDeleteBlueprintFmt, err) }
	errFailedCountBlueprints = func(err error) error { return fmt.Errorf(errFailedCountBlueprintsFmt, err) }

	errFailedInsertActivity = func(err error) error { return fmt.Errorf(errFailedInsertActivityFmt, err) }
	errFailedListActivity   = func(err error) error { return fmt.Errorf(errFailedListActivityFmt, err) }
	errFailedScanActivity   = func(err error) error { return fmt.Errorf(errFailedScanActivityFmt, err) }
	errFailedCountActivity  = func(err error) error { return fmt.Errorf(errFailedCountActivityFmt, err) }
)
