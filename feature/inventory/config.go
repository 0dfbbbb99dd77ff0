package inventory

// Config holds the file locations used by the inventory feature.
type Config struct {
	// ImportFile is the file imported at the start of a session.
	ImportFile string `mapstructure:"import_file" default:"inventory.csv"`
	// BackupFile is the export destination used by the backup action.
	BackupFile string `mapstructure:"backup_file" default:"backup.csv"`
	// UploadBackups copies every backup to the storage bucket.
	UploadBackups bool `mapstructure:"upload_backups" default:"false"`
	// BackupPrefix is the object prefix for uploaded backups.
	BackupPrefix string `mapstructure:"backup_prefix" default:"backups"`
}
