package etc

import (
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/sirupsen/logrus"
)

type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Config is the single input of a conversion run. Flags given on the command
// line take precedence over the environment.
type Config struct {
	Output      string `env:"TWISTLOCK2CODEDX_OUTPUT"`
	MetricsFile string `env:"TWISTLOCK2CODEDX_METRICS_FILE"`
	LogFormat   string `env:"TWISTLOCK2CODEDX_LOG_FORMAT" envDefault:"text"`

	// Filter is accepted for compatibility and does not affect the conversion.
	Filter string `env:"TWISTLOCK2CODEDX_FILTER"`

	InputFiles []string
}

func GetConfig() (cfg Config, err error) {
	err = env.Parse(&cfg)
	return
}

func GetLogLevel() logrus.Level {
	if value, ok := os.LookupEnv("TWISTLOCK2CODEDX_LOG_LEVEL"); ok {
		level, err := logrus.ParseLevel(value)
		if err != nil {
			return logrus.InfoLevel
		}
		return level
	}
	return logrus.InfoLevel
}

func GetLogFormatter(format string) logrus.Formatter {
	if format == "json" {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{
		DisableTimestamp: true,
	}
}
