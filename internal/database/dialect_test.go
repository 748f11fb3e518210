package database

import (
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "sqlite3"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for SQLite")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "sqlite"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})

	t.Run("ForUpdateClause", func(t *testing.T) {
		if result := dialect.ForUpdateClause(); result != "" {
			t.Errorf("ForUpdateClause() = %v, want empty string", result)
		}
	})

	t.Run("RandomFunction", func(t *testing.T) {
		result := dialect.RandomFunction()
		expected := "RANDOM()"
		if result != expected {
			t.Errorf("RandomFunction() = %v, want %v", result, expected)
		}
	})

	t.Run("DateFunction", func(t *testing.T) {
		result := dialect.DateFunction("started_at")
		expected := "date(started_at)"
		if result != expected {
			t.Errorf("DateFunction() = %v, want %v", result, expected)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "postgres"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return false for PostgreSQL")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "postgres"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})

	t.Run("ForUpdateClause", func(t *testing.T) {
		result := dialect.ForUpdateClause()
		expected := " FOR UPDATE"
		if result != expected {
			t.Errorf("ForUpdateClause() = %v, want %v", result, expected)
		}
	})

	t.Run("RandomFunction", func(t *testing.T) {
		result := dialect.RandomFunction()
		expected := "RANDOM()"
		if result != expected {
			t.Errorf("RandomFunction() = %v, want %v", result, expected)
		}
	})

	t.Run("DateFunction", func(t *testing.T) {
		result := dialect.DateFunction("started_at")
		expected := "TO_CHAR(started_at, 'YYYY-MM-DD')"
		if result != expected {
			t.Errorf("DateFunction() = %v, want %v", result, expected)
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "mysql"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for MySQL")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "mysql"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})

	t.Run("ForUpdateClause", func(t *testing.T) {
		result := dialect.ForUpdateClause()
		expected := " FOR UPDATE"
		if result != expected {
			t.Errorf("ForUpdateClause() = %v, want %v", result, expected)
		}
	})

	t.Run("RandomFunction", func(t *testing.T) {
		result := dialect.RandomFunction()
		expected := "RAND()"
		if result != expected {
			t.Errorf("RandomFunction() = %v, want %v", result, expected)
		}
	})

	t.Run("DateFunction", func(t *testing.T) {
		result := dialect.DateFunction("started_at")
		expected := "DATE_FORMAT(started_at, '%Y-%m-%d')"
		if result != expected {
			t.Errorf("DateFunction() = %v, want %v", result, expected)
		}
	})
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT * FROM users WHERE id = ?",
			expected: "SELECT * FROM users WHERE id = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT * FROM users WHERE id = ?",
			expected: "SELECT * FROM users WHERE id = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO words (text) VALUES (?), (?)",
			expected: "INSERT INTO words (text) VALUES ($1), ($2)",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "UPDATE games SET won = ?, finished_at = ? WHERE id = ?",
			expected: "UPDATE games SET won = ?, finished_at = ? WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(tt.query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}
