package logger

import (
	"github.com/op/go-logging"
)

// ProgressLogger logs the progress of a minio upload. Minio reads
// from the Progress reader as it sends each chunk of the object.
type ProgressLogger struct {
	logger     *logging.Logger
	chunks     int
	totalBytes int64
	fileSize   int64
	prefix     string
}

// NewProgressLogger creates a new ProgressLogger.
func NewProgressLogger(logger *logging.Logger, prefix string, fileSize int64) *ProgressLogger {
	return &ProgressLogger{
		logger:   logger,
		prefix:   prefix,
		fileSize: fileSize,
	}
}

// Read fulfills the io.Reader interface required by
// minio.PutObjectOptions.Progress. Probe files are tiny, so
// this logs at debug level only.
func (p *ProgressLogger) Read(b []byte) (n int, err error) {
	p.chunks++
	p.totalBytes += int64(len(b))
	p.logger.Debugf("%s: chunk %d, %d of %d bytes sent",
		p.prefix, p.chunks, p.totalBytes, p.fileSize)
	return len(b), nil
}

// BytesSent returns the number of bytes minio reported as sent.
func (p *ProgressLogger) BytesSent() int64 {
	return p.totalBytes
}
