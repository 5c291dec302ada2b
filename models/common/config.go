package common

import (
	"fmt"
	"os"

	"github.com/APTrust/bucket-tester/constants"
	"github.com/APTrust/bucket-tester/util/logger"
	"github.com/op/go-logging"
	"github.com/spf13/viper"
)

// Config holds everything a single bucket round trip needs. It is
// built once at startup and never changes.
type Config struct {
	AccessKeyID     string
	Bucket          string
	LogLevel        logging.Level
	Region          string
	S3Host          string
	SecretAccessKey string
	UseSSL          bool
	WorkingDir      string
}

// NewConfig returns a Config for the given bucket and static
// credentials. The tool reads no config file and no environment
// variables. Region, host and the rest come from built-in defaults.
func NewConfig(bucket, accessKeyID, secretAccessKey string) (*Config, error) {
	v, err := loadSettings(bucket, accessKeyID, secretAccessKey)
	if err != nil {
		return nil, err
	}
	logLevel, err := logger.ParseLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	config := &Config{
		AccessKeyID:     v.GetString("ACCESS_KEY_ID"),
		Bucket:          v.GetString("BUCKET"),
		LogLevel:        logLevel,
		Region:          v.GetString("S3_REGION"),
		S3Host:          v.GetString("S3_HOST"),
		SecretAccessKey: v.GetString("SECRET_ACCESS_KEY"),
		UseSSL:          v.GetBool("S3_USE_SSL"),
		WorkingDir:      v.GetString("WORKING_DIR"),
	}
	return config, nil
}

func loadSettings(bucket, accessKeyID, secretAccessKey string) (*viper.Viper, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}
	v := viper.New()
	v.SetDefault("LOG_LEVEL", constants.DefaultLogLevel)
	v.SetDefault("S3_HOST", constants.DefaultS3Host)
	v.SetDefault("S3_REGION", constants.DefaultS3Region)
	v.SetDefault("S3_USE_SSL", true)
	v.SetDefault("WORKING_DIR", workingDir)
	v.Set("BUCKET", bucket)
	v.Set("ACCESS_KEY_ID", accessKeyID)
	v.Set("SECRET_ACCESS_KEY", secretAccessKey)
	return v, nil
}

// String describes the config for the log. The secret key is omitted
// and the access key id is masked.
func (c *Config) String() string {
	return fmt.Sprintf("bucket=%s region=%s host=%s ssl=%t key=%s workdir=%s",
		c.Bucket, c.Region, c.S3Host, c.UseSSL, MaskKey(c.AccessKeyID), c.WorkingDir)
}

// MaskKey returns "****" followed by the last four characters of key.
// Keys of four characters or fewer are masked entirely.
func MaskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
