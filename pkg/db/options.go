package db

// Option -.
type Option func(*SQL)

// MaxPoolSize -.
func MaxPoolSize(size int) Option {
	return func(s *SQL) {
		if size > 0 {
			s.maxPoolSize = size
		}
	}
}

// EnableForeignKeys turns on foreign-key enforcement for the SQLite backend.
// PostgreSQL enforces them unconditionally.
func EnableForeignKeys(enable bool) Option {
	return func(s *SQL) {
		s.enableForeignKeys = enable
	}
}
