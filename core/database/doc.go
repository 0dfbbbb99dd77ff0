// Package database handles database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that opens either a
// file-backed SQLite database (the default, suitable for a single local user) or a
// MySQL database, based on the application's configuration.
//
// # Connect
//
// Connect opens the dialector for the configured driver, tunes the connection pool and
// verifies the connection with a ping bounded by TimeoutSeconds. SQLite is limited to a
// single open connection so that every statement, including those inside transactions,
// runs on the same handle.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return fmt.Errorf("failed to connect to database: %w", err)
//	}
//	defer database.Close(db)
package database
