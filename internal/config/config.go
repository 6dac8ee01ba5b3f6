// config предоставляет структуру конфигурации etl-сервиса
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	DB       DBConfig       `yaml:"db"`
	S3       S3Config       `yaml:"s3"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Probe    ProbeConfig    `yaml:"probe"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// S3Config — настройки blob-хранилища (MinIO/S3).
// Бакеты соответствуют стадиям пайплайна: collect — сырые объекты
// коллекторов, transform — принятые записи, quarantine — отбракованные,
// stats — статистика прогонов.
type S3Config struct {
	Endpoint     string `yaml:"endpoint"      env:"S3_ENDPOINT"      env-default:"http://localhost:9000"`
	RootUser     string `yaml:"root_user"     env:"S3_ROOT_USER"     env-required:"true"`
	RootPassword string `yaml:"root_password" env:"S3_ROOT_PASSWORD" env-required:"true"`

	CollectBucket    string `yaml:"collect_bucket"    env:"S3_COLLECT_BUCKET"    env-default:"collect"`
	TransformBucket  string `yaml:"transform_bucket"  env:"S3_TRANSFORM_BUCKET"  env-default:"transform"`
	QuarantineBucket string `yaml:"quarantine_bucket" env:"S3_QUARANTINE_BUCKET" env-default:"quarantine"`
	StatsBucket      string `yaml:"stats_bucket"      env:"S3_STATS_BUCKET"      env-default:"stats"`
}

// PipelineConfig — параметры transform-ядра.
type PipelineConfig struct {
	// MinTextLength — минимальная длина нормализованного текста (в рунах);
	// записи короче уходят в карантин с причиной too_short.
	MinTextLength int `yaml:"min_text_length" env:"MIN_TEXT_LENGTH" env-default:"100"`
	// Workers — число воркеров параллельной фазы extract→normalize→features.
	Workers int `yaml:"workers" env:"PIPELINE_WORKERS" env-default:"4"`
	// TrackingParams — deny-list query-параметров, вырезаемых при
	// канонизации URL. Дополняет встроенные правила
	// (utm, utm_*, *clid, mc_*, igshid). Через ENV — разделитель запятая.
	TrackingParams []string `yaml:"tracking_params" env:"TRACKING_PARAMS" env-separator:"," env-default:"fbclid,gclid,yclid,igshid,ref,ref_src"`
	// StopWords — стоп-слова, вырезаемые из hash-копии заголовка.
	// Влияют только на отпечаток, не на отображаемые поля.
	StopWords []string `yaml:"stop_words" env:"STOP_WORDS" env-separator:"," env-default:"a,an,the,of,in,on,at,to,and,or,for,is,are,was,were"`
}

// ProbeConfig — политика best-effort проверки достижимости изображений.
// Единственная сетевая точка пайплайна; отказ пробы не отбраковывает
// запись, а лишь убирает конкретную ссылку на изображение.
type ProbeConfig struct {
	Enabled     bool          `yaml:"enabled"      env:"PROBE_ENABLED"      env-default:"false"`
	Timeout     time.Duration `yaml:"timeout"      env:"PROBE_TIMEOUT"      env-default:"3s"`
	MaxAttempts int           `yaml:"max_attempts" env:"PROBE_MAX_ATTEMPTS" env-default:"2"`
	Backoff     time.Duration `yaml:"backoff"      env:"PROBE_BACKOFF"      env-default:"500ms"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	// Run — предельная длительность одного прогона пайплайна.
	Run time.Duration `yaml:"run" env:"RUN_TIMEOUT" env-default:"10m"`
	// Storage — таймаут инициализации подключений к хранилищам.
	Storage time.Duration `yaml:"storage" env:"STORAGE_TIMEOUT" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.Pipeline.MinTextLength < 0 {
		return fmt.Errorf("pipeline.min_text_length must be >= 0")
	}
	if c.Pipeline.Workers <= 0 {
		return fmt.Errorf("pipeline.workers must be > 0")
	}
	if c.Probe.MaxAttempts < 1 {
		return fmt.Errorf("probe.max_attempts must be at least 1")
	}
	if c.Probe.Timeout <= 0 {
		return fmt.Errorf("probe.timeout must be > 0")
	}
	if c.Probe.Backoff < 0 {
		return fmt.Errorf("probe.backoff must be >= 0")
	}
	if c.Timeouts.Run <= 0 {
		return fmt.Errorf("timeouts.run must be > 0")
	}
	return nil
}
