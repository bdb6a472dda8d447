package config

import "time"

// NewAppForTest creates an App config for testing purposes
func NewAppForTest(path string) *App {
	return &App{path: path}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{level: level, format: format, output: output}
}

// NewDatabaseForTest creates a Database config for testing purposes
func NewDatabaseForTest(host string, port int, name, user, password string) *Database {
	return &Database{
		backend:  "mysql",
		host:     host,
		port:     port,
		name:     name,
		user:     user,
		password: password,
		charset:  "utf8",
		timeout:  30 * time.Second,
	}
}
