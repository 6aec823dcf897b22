package config

import (
	"fmt"
	"os"
	"sync"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
	Stage        string
}

// Global serverless configuration
var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = &ServerlessConfig{
			IsLambda:     isRunningInLambda(),
			FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
			Region:       os.Getenv("AWS_REGION"),
			Stage:        GetEnv("STAGE", "dev"),
		}
	})
	return serverlessConfig
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return GetServerlessConfig().IsLambda
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// AdaptConfigForServerless modifies configuration for serverless deployment.
// Inside Lambda the only supported store is DynamoDB.
func AdaptConfigForServerless(sc *ServerlessConfig, config *Config) *Config {
	if sc == nil || !sc.IsLambda {
		return config
	}

	config.Store.Type = StoreDynamoDB
	if sc.Region != "" {
		config.Store.Region = sc.Region
	}

	return config
}

// GetOptimizedConfig returns configuration optimized for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config := AdaptConfigForServerless(GetServerlessConfig(), read())

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
