package common

import (
	"strings"

	"github.com/op/go-logging"
)

// Tracer lets us write Minio trace output to our logs.
type Tracer struct {
	logger *logging.Logger
}

func NewTracer(logger *logging.Logger) *Tracer {
	return &Tracer{
		logger: logger,
	}
}

// Write sends one chunk of HTTP trace output to the debug log.
// Minio writes the Authorization header into its trace, so
// signatures are masked before logging.
func (t *Tracer) Write(p []byte) (n int, err error) {
	t.logger.Debug(maskAuthorization(string(p)))
	return len(p), nil
}

func maskAuthorization(trace string) string {
	lines := strings.Split(trace, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(line), "authorization:") {
			lines[i] = "Authorization: **REDACTED**"
		}
	}
	return strings.Join(lines, "\n")
}
