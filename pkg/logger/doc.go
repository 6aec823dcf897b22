// Package logger builds the logrus logger shared by the Lambda function,
// the local server and the migration tool.
package logger
