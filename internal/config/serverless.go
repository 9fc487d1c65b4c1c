package config

import (
	"os"
	"path/filepath"
)

// lambdaWritableDir is the only writable path inside a Lambda sandbox.
const lambdaWritableDir = "/tmp"

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
	Stage        string
}

// GetServerlessConfig reads the Lambda runtime environment
func GetServerlessConfig() *ServerlessConfig {
	return &ServerlessConfig{
		IsLambda:     isRunningInLambda(),
		FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		Region:       os.Getenv("AWS_REGION"),
		Stage:        GetEnv("STAGE", "dev"),
	}
}

func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if isRunningInLambda() {
		return "serverless"
	}
	return "server"
}

// AdaptConfigForServerless moves the default database into the writable
// sandbox directory when running inside Lambda. Explicit paths are kept.
func AdaptConfigForServerless(config *Config) *Config {
	if !isRunningInLambda() {
		return config
	}

	if config.Database.ConnectionString == DefaultDatabasePath {
		config.Database.ConnectionString = filepath.Join(lambdaWritableDir, filepath.Base(DefaultDatabasePath))
	}

	// A cold sandbox starts with an empty /tmp.
	config.Database.AutoMigrate = true

	return config
}

// GetOptimizedConfig returns configuration adjusted for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	return AdaptConfigForServerless(config), nil
}
