package config

// UploadConfig holds image upload configuration for the catalog.
// It is passed explicitly to the product service instead of living in
// process-wide state.
type UploadConfig struct {
	// Folder is where uploaded images are written. Stored image paths are
	// relative to the working directory and include this folder.
	Folder string
	// MaxUploadBytes caps a single upload. Zero means no limit.
	MaxUploadBytes int64
	// AllowedExts lists the accepted file extensions, lower case, no dot.
	AllowedExts []string
}

// DefaultUploadConfig builds the upload configuration from the environment.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		Folder:         GetUploadFolder(),
		MaxUploadBytes: GetMaxUploadBytes(),
		AllowedExts:    []string{"png", "jpg", "jpeg", "gif"},
	}
}

// Allows reports whether ext (lower case, no dot) is an accepted image
// extension.
func (c UploadConfig) Allows(ext string) bool {
	for _, allowed := range c.AllowedExts {
		if ext == allowed {
			return true
		}
	}
	return false
}
