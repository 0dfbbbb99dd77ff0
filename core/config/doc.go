// Package config provides configuration management for the inventory manager.
//
// Settings come from environment variables, optionally overlaid by a .env file
// in the working directory. Defaults are declared with `default` struct tags on
// each section and registered with Viper by reflection.
//
// # Configuration Structure
//
//   - Inventory: import file, backup file, backup upload toggle and prefix
//   - Database: driver (sqlite or mysql) and connection details
//   - Storage: S3/MinIO credentials and the backup bucket
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Inventory.ImportFile)
package config
