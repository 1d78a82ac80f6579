package webhook

// Patch describes a partial update to a stored config. Nil fields are
// left untouched. Backup is a double pointer so a patch can distinguish
// "leave the backup alone" from "clear the backup".
type Patch struct {
	URL          *string
	IsActive     *bool
	Backup       **Backup
	RecoveryCode *string
	ConfigExport *string
}
