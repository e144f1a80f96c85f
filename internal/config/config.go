package config // package config loads application configuration from environment variables

import (
    "log" // log is used to report configuration errors and halt execution
    "os"  // os provides access to environment variables
)

// Detector mode names accepted in the DETECTOR environment variable.
const (
    DetectorRandom = "random" // substitute detector, no engine required
    DetectorOCR    = "ocr"    // OCR-backed detector, needs a recognition engine
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  MySQL credentials are only required when the
// mysql driver is selected; the embedded sqlite driver needs just a path.
type Config struct {
    Env      string // application environment (e.g. "dev", "prod")
    Port     string // HTTP port to listen on
    DBDriver string // backing engine: "mysql" or "sqlite"
    DBPath   string // sqlite database file path
    DBUser   string // database username (mysql)
    DBPass   string // database password (mysql, optional)
    DBHost   string // database host address (mysql)
    DBPort   string // database port number (mysql)
    DBName   string // database name (mysql)
    Detector string // name detector mode: "random" or "ocr"
    OCRLang  string // Tesseract language code for the OCR detector
}

// Load reads configuration values from environment variables and returns a
// Config.  Most values default sensibly; variables the selected database
// driver requires are enforced by must() and missing values cause the
// program to exit with a fatal log message.
func Load() Config {
    cfg := Config{
        Env:      getenvDefault("APP_ENV", "dev"),       // environment (dev/test/prod)
        Port:     getenvDefault("APP_PORT", "5000"),     // port to bind the HTTP server
        DBDriver: getenvDefault("DB_DRIVER", "sqlite"),  // backing engine selection
        Detector: getenvDefault("DETECTOR", DetectorRandom), // detection mode
        OCRLang:  getenvDefault("OCR_LANG", "por"),          // label language for OCR
    }
    switch cfg.DBDriver {
    case "mysql":
        cfg.DBUser = must("DB_USER")      // database user
        cfg.DBPass = os.Getenv("DB_PASS") // database password (empty allowed)
        cfg.DBHost = must("DB_HOST")      // database host
        cfg.DBPort = must("DB_PORT")      // database port
        cfg.DBName = must("DB_NAME")      // database name
    case "sqlite":
        cfg.DBPath = getenvDefault("DB_PATH", "arquivo.db") // database file
    default:
        log.Fatalf("unsupported DB_DRIVER: %q (want mysql or sqlite)", cfg.DBDriver)
    }
    if cfg.Detector != DetectorRandom && cfg.Detector != DetectorOCR {
        log.Fatalf("unsupported DETECTOR: %q (want %s or %s)", cfg.Detector, DetectorRandom, DetectorOCR)
    }
    return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// getenvDefault returns the variable's value or the given default when
// it is unset or empty.
func getenvDefault(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
