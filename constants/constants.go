package constants

const (
	AppName              = "bucket_tester"
	DefaultLogLevel      = "INFO"
	DefaultS3Host        = "s3.amazonaws.com"
	DefaultS3Region      = "us-east-1"
	DownloadFilePrefix   = "download_"
	ProbeFilePrefix      = "test_"
	ProbeFileSuffix      = ".txt"
	ProbeContentTemplate = "This test file was created at %s."
	ProbeTimeFormat      = "2006-01-02T15:04:05.000"
)

// Exit Codes
const (
	// EXIT_OK is the only exit code this tool returns. Failures are
	// reported on stderr, never through the exit status.
	EXIT_OK = 0
)

// UsageMessage is printed to STDOUT when the user supplies fewer
// than three arguments.
const UsageMessage = "Usage: " + AppName + " <bucket name> <access key id> <secret access key>"
