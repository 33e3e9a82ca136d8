// Package repository defines the attendance store interface and errors.
package repository

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithIndent sets the indentation used when writing the database file.
func WithIndent(indent string) Option {
	return func(s *FileStore) {
		s.indent = indent
	}
}
