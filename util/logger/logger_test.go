package logger_test

import (
	"bytes"
	"testing"

	"github.com/APTrust/bucket-tester/util/logger"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.InitLogger(buf, logging.INFO)
	require.NotNil(t, log)
	log.Info("round trip started")
	log.Debug("this should be filtered")
	assert.Contains(t, buf.String(), "[INFO] round trip started")
	assert.NotContains(t, buf.String(), "filtered")
}

func TestParseLevel(t *testing.T) {
	level, err := logger.ParseLevel("debug")
	require.Nil(t, err)
	assert.Equal(t, logging.DEBUG, level)

	level, err = logger.ParseLevel(" ERROR ")
	require.Nil(t, err)
	assert.Equal(t, logging.ERROR, level)

	_, err = logger.ParseLevel("LOUD")
	assert.NotNil(t, err)
}

func TestProgressLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.InitLogger(buf, logging.DEBUG)
	progress := logger.NewProgressLogger(log, "test_1.txt", 10)
	n, err := progress.Read(make([]byte, 6))
	assert.Nil(t, err)
	assert.Equal(t, 6, n)
	n, err = progress.Read(make([]byte, 4))
	assert.Nil(t, err)
	assert.Equal(t, 4, n)
	assert.EqualValues(t, 10, progress.BytesSent())
	assert.Contains(t, buf.String(), "test_1.txt: chunk 2, 10 of 10 bytes sent")
}
