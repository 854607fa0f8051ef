package settings

import (
	"bytes"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	SinkBucketKey = "SINK_BUCKET"

	DefaultProvider       = "s3"
	DefaultRegion         = "us-east-1"
	DefaultLocalEndpoint  = "http://localhost:4572"
	DefaultLocalPort      = 9050
	DefaultCopyTimeout    = 30 * time.Second
	DefaultLocalAccessKey = "ABC"
	DefaultLocalSecretKey = "EFG"
)

// Config is the configuration of the Lambda process, read from the environment.
type Config struct {
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	CopyTimeout time.Duration `env:"COPY_TIMEOUT" envDefault:"30s"`

	Storage StorageConfig
	Notify  NotifyConfig
	Tracing TracingConfig
}

type StorageConfig struct {
	Provider  string `env:"STORAGE_PROVIDER" envDefault:"s3"`
	Endpoint  string `env:"S3_SERVICE_ENDPOINT"`
	Region    string `env:"S3_SIGNING_REGION" envDefault:"us-east-1"`
	PathStyle bool   `env:"S3_PATH_STYLE" envDefault:"true"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	UseSSL    bool   `env:"S3_USE_SSL" envDefault:"false"`
}

type NotifyConfig struct {
	Function       string   `env:"COMPLETION_FUNCTION"`
	LambdaEndpoint string   `env:"LAMBDA_ENDPOINT"`
	KafkaBrokers   []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic     string   `env:"KAFKA_TOPIC"`
}

type TracingConfig struct {
	ServiceName string  `env:"OTEL_SERVICE_NAME" envDefault:"rainbow-copy"`
	Endpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	SampleRatio float64 `env:"OTEL_TRACES_SAMPLER_RATIO" envDefault:"1.0"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	logger.Debugf("Loaded configuration %+v", *cfg)
	return cfg, nil
}

// LocalConfig configures the local invoke emulator.
type LocalConfig struct {
	IsDebug    bool
	Port       int
	SinkBucket string
	Timeout    time.Duration
	FilterPath string

	Storage StorageConfig
	Notify  NotifyConfig
}

func (config *LocalConfig) Address() string {
	return fmt.Sprintf(":%d", config.Port)
}

// Lookup layers the -sink-bucket flag over the process environment.
func (config *LocalConfig) Lookup() Lookup {
	if config.SinkBucket == "" {
		return Environment{}
	}

	return Chain{Values{SinkBucketKey: config.SinkBucket}, Environment{}}
}

func FromFlags(name string, args []string) (*LocalConfig, string, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	var buf bytes.Buffer
	flags.SetOutput(&buf)

	var cfg LocalConfig
	flags.BoolVar(&cfg.IsDebug, "debug", false, "Enable debug logging")
	flags.IntVar(&cfg.Port, "port", DefaultLocalPort, "Port used for the HTTP invoke API")
	flags.StringVar(&cfg.SinkBucket, "sink-bucket", "", "Sink bucket, overrides the SINK_BUCKET environment variable")
	flags.DurationVar(&cfg.Timeout, "timeout", DefaultCopyTimeout, "Maximum duration of a single copy")
	flags.StringVar(&cfg.FilterPath, "filter", "", "Path to a yaml file with prefix/suffix rules for asynchronous invocations")
	flags.StringVar(&cfg.Storage.Provider, "provider", DefaultProvider, "Storage provider: s3, s3v1 or minio")
	flags.StringVar(&cfg.Storage.Endpoint, "endpoint", DefaultLocalEndpoint, "Endpoint URL for the storage service")
	flags.StringVar(&cfg.Storage.Region, "region", DefaultRegion, "Signing region for the storage service")
	flags.StringVar(&cfg.Storage.AccessKey, "access-key", DefaultLocalAccessKey, "Access key for the storage service")
	flags.StringVar(&cfg.Storage.SecretKey, "secret-key", DefaultLocalSecretKey, "Secret key for the storage service")
	flags.BoolVar(&cfg.Storage.UseSSL, "ssl", false, "Use TLS when talking to a minio storage service")
	flags.StringVar(&cfg.Notify.Function, "completion-function", "", "Function invoked asynchronously after every copy")
	flags.StringVar(&cfg.Notify.LambdaEndpoint, "lambda-endpoint", "", "Endpoint URL for the Lambda service")
	flags.StringVar(&cfg.Notify.KafkaTopic, "kafka-topic", "", "Kafka topic receiving copy events")

	var brokers string
	flags.StringVar(&brokers, "kafka-brokers", "", "Comma separated list of Kafka brokers")

	err := flags.Parse(args)
	if err != nil {
		return nil, buf.String(), err
	}

	cfg.Storage.PathStyle = true
	if brokers != "" {
		cfg.Notify.KafkaBrokers = strings.Split(brokers, ",")
	}

	return &cfg, buf.String(), err
}
