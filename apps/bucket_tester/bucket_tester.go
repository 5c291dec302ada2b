package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/APTrust/bucket-tester/constants"
	"github.com/APTrust/bucket-tester/models/common"
	"github.com/APTrust/bucket-tester/network"
	"github.com/APTrust/bucket-tester/util/logger"
	"github.com/APTrust/bucket-tester/verification"
)

// bucket_tester checks that the given credentials can write an object
// to a bucket and read it back.
//
// Usage: bucket_tester <bucket name> <access key id> <secret access key>
//
// It always exits 0. Problems are reported on STDERR.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, network.NewObjectStore))
}

func run(args []string, stdout, stderr io.Writer, newClient network.ClientFactory) int {
	if len(args) < 3 {
		fmt.Fprintln(stdout, constants.UsageMessage)
		return constants.EXIT_OK
	}
	config, err := common.NewConfig(args[0], args[1], args[2])
	if err != nil {
		fmt.Fprintln(stderr, "Cannot load settings:", err.Error())
		return constants.EXIT_OK
	}
	log := logger.InitLogger(stderr, config.LogLevel)
	verifier := verification.NewVerifier(config, log)
	verifier.NewClient = newClient
	verifier.Run(context.Background())
	return constants.EXIT_OK
}
