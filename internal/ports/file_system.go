package ports

// FileSystem reads and writes files. Paths starting with "~" are relative to the user's home.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	// WriteFile creates parent directories and writes content readable by the owner only.
	WriteFile(path string, content []byte) error
	FileExists(path string) (bool, error)
}
