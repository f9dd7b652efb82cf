package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func validConfig() *Config {
	return &Config{
		MetaAPI: MetaAPIConfig{
			Version:       "v20.0",
			DefaultFields: []string{"spend", "clicks", "ad_id"},
		},
		Retry:    RetryConfig{Total: 3, BackoffFactor: 1, StatusForcelist: []int{500, 502, 503, 504}},
		Loader:   LoaderConfig{IfExists: "replace", ChunkSize: 10000},
		Postgres: PostgresConfig{Host: "localhost", Port: 5432, User: "postgres", DBName: "postgres"},
		Redis:    RedisConfig{Host: "localhost", Port: 6379},
		RabbitMQ: RabbitMQConfig{Host: "localhost", JobQueue: "metaads.sync.jobs"},
		MinIO: MinIOConfig{
			Endpoint:  "localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
			Bucket:    "metaads-raw",
		},
		JWT: JWTConfig{
			Issuer:    "metaads-srv",
			SecretKey: strings.Repeat("k", 32),
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("accepts a valid config", func(t *testing.T) {
		if err := validate(validConfig()); err != nil {
			t.Fatalf("validate failed: %v", err)
		}
	})

	t.Run("rejects non-positive retry total", func(t *testing.T) {
		cfg := validConfig()
		cfg.Retry.Total = 0
		if err := validate(cfg); err == nil {
			t.Error("expected error for retry.total = 0")
		}
	})

	t.Run("rejects forcelist codes outside 500-599", func(t *testing.T) {
		for _, code := range []int{404, 499, 600} {
			cfg := validConfig()
			cfg.Retry.StatusForcelist = []int{code}
			if err := validate(cfg); err == nil {
				t.Errorf("expected error for forcelist code %d", code)
			}
		}
	})

	t.Run("rejects non-positive chunksize", func(t *testing.T) {
		cfg := validConfig()
		cfg.Loader.ChunkSize = 0
		if err := validate(cfg); err == nil {
			t.Error("expected error for loader.chunksize = 0")
		}
	})

	t.Run("rejects unknown if_exists mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.Loader.IfExists = "upsert"
		if err := validate(cfg); err == nil {
			t.Error("expected error for loader.if_exists = upsert")
		}
	})

	t.Run("rejects duplicate default fields", func(t *testing.T) {
		cfg := validConfig()
		cfg.MetaAPI.DefaultFields = []string{"spend", "spend"}
		if err := validate(cfg); err == nil {
			t.Error("expected error for duplicate field")
		}
	})

	t.Run("rejects empty default fields", func(t *testing.T) {
		cfg := validConfig()
		cfg.MetaAPI.DefaultFields = []string{"spend", ""}
		if err := validate(cfg); err == nil {
			t.Error("expected error for empty field entry")
		}
	})
}

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	setDefaults()

	t.Run("retry policy matches the documented defaults", func(t *testing.T) {
		if got := viper.GetInt("retry.total"); got != 3 {
			t.Errorf("retry.total = %d, want 3", got)
		}
		want := []int{500, 502, 503, 504}
		got := viper.GetIntSlice("retry.status_forcelist")
		if len(got) != len(want) {
			t.Fatalf("status_forcelist = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("status_forcelist[%d] = %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("default field list is well formed", func(t *testing.T) {
		fields := viper.GetStringSlice("meta_api.default_fields")
		if len(fields) == 0 {
			t.Fatal("default_fields is empty")
		}
		seen := make(map[string]struct{}, len(fields))
		for _, f := range fields {
			if f == "" {
				t.Error("default_fields contains an empty entry")
			}
			if _, dup := seen[f]; dup {
				t.Errorf("default_fields contains duplicate %q", f)
			}
			seen[f] = struct{}{}
		}
	})

	t.Run("loader defaults mirror the bulk-load policy", func(t *testing.T) {
		if got := viper.GetString("loader.if_exists"); got != "replace" {
			t.Errorf("loader.if_exists = %q, want replace", got)
		}
		if got := viper.GetInt("loader.chunksize"); got != 10000 {
			t.Errorf("loader.chunksize = %d, want 10000", got)
		}
	})
}
