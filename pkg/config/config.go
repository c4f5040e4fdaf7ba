package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log         LogConfig
	Institution InstitutionConfig
	Snapshots   SnapshotConfig
	Exports     ExportConfig

	DefaultScale string
}

type LogConfig struct {
	Level  string
	Format string
}

// InstitutionConfig brands the generated transcript.
type InstitutionConfig struct {
	Name             string
	TranscriptPrefix string
}

// SnapshotConfig locates saved course documents.
type SnapshotConfig struct {
	StorageDir string
}

// ExportConfig locates generated transcript artifacts.
type ExportConfig struct {
	StorageDir string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Institution = InstitutionConfig{
		Name:             v.GetString("INSTITUTION_NAME"),
		TranscriptPrefix: v.GetString("TRANSCRIPT_PREFIX"),
	}

	cfg.Snapshots = SnapshotConfig{StorageDir: v.GetString("SNAPSHOT_DIR")}
	cfg.Exports = ExportConfig{StorageDir: v.GetString("EXPORT_DIR")}

	cfg.DefaultScale = v.GetString("DEFAULT_SCALE")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("INSTITUTION_NAME", "University CGPA Calculator")
	v.SetDefault("TRANSCRIPT_PREFIX", "CGPA")

	v.SetDefault("SNAPSHOT_DIR", "./snapshots")
	v.SetDefault("EXPORT_DIR", "./exports")

	v.SetDefault("DEFAULT_SCALE", "5.0")
}
