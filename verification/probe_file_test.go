package verification_test

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/APTrust/bucket-tester/verification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var probeNamePattern = regexp.MustCompile(`^test_\d{13}\.txt$`)

var Bloomsday = time.Date(2024, time.June, 16, 15, 4, 5, 123456789, time.UTC)

func TestNewProbeFile(t *testing.T) {
	dir := t.TempDir()
	probe := verification.NewProbeFile(dir, Bloomsday)
	assert.Equal(t, "test_1718550245123.txt", probe.Name)
	assert.Equal(t, filepath.Join(dir, "test_1718550245123.txt"), probe.Path())
	assert.Equal(t, filepath.Join(dir, "download_test_1718550245123.txt"), probe.DownloadPath())
	assert.Equal(t, "This test file was created at 2024-06-16T15:04:05.123.", probe.Content)
	assert.Equal(t, Bloomsday, probe.CreatedAt)
}

func TestProbeFileName(t *testing.T) {
	assert.True(t, probeNamePattern.MatchString(verification.ProbeFileName(time.Now())))
	assert.Equal(t, "download_test_1.txt", verification.DownloadFileName("test_1.txt"))
}

func TestProbeFileWrite(t *testing.T) {
	probe := verification.NewProbeFile(t.TempDir(), Bloomsday)
	require.Nil(t, probe.Write())
	data, err := os.ReadFile(probe.Path())
	require.Nil(t, err)
	assert.Equal(t, probe.Content, string(data))
}

// Names have millisecond resolution. Two probes created within the same
// millisecond collide, and the second Write fails instead of overwriting
// the first file. This is a known race. Probes one millisecond apart
// never collide.
func TestProbeFileNameCollision(t *testing.T) {
	dir := t.TempDir()
	first := verification.NewProbeFile(dir, Bloomsday)
	sameMilli := verification.NewProbeFile(dir, Bloomsday.Add(500*time.Microsecond))
	nextMilli := verification.NewProbeFile(dir, Bloomsday.Add(time.Millisecond))

	assert.Equal(t, first.Name, sameMilli.Name)
	assert.NotEqual(t, first.Name, nextMilli.Name)

	require.Nil(t, first.Write())
	err := sameMilli.Write()
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, os.ErrExist))
	assert.Nil(t, nextMilli.Write())

	// The first probe's content survives the collision.
	data, err := os.ReadFile(first.Path())
	require.Nil(t, err)
	assert.Equal(t, first.Content, string(data))
}
