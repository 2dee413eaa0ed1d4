package main

import (
	"os"

	"github.com/arthur-debert/jenkins-job-linter/internal/cli"
	"github.com/arthur-debert/jenkins-job-linter/pkg/logging"
)

func main() {
	err := cli.NewRootCmd().Execute()
	status := cli.HandleError(os.Stderr, err)
	logging.Close()
	os.Exit(status)
}
