package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"commission-reporting-api/pkg/lambda"
)

func main() {
	// Configuration is read on the first invocation and the container is
	// reused while the sandbox stays warm.
	manager := lambda.NewConnectionManager(nil, nil)
	awslambda.Start(manager.Handle)
}
