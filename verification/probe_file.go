package verification

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/APTrust/bucket-tester/constants"
)

// ProbeFile is the small local file the verifier uploads and then
// downloads again. Its base name is also its object key.
type ProbeFile struct {
	CreatedAt time.Time
	Content   string
	Dir       string
	Name      string
}

// NewProbeFile describes a probe file in dir, named and stamped with
// createdAt. It does not touch the file system. Call Write for that.
func NewProbeFile(dir string, createdAt time.Time) *ProbeFile {
	return &ProbeFile{
		CreatedAt: createdAt,
		Content:   fmt.Sprintf(constants.ProbeContentTemplate, createdAt.Format(constants.ProbeTimeFormat)),
		Dir:       dir,
		Name:      ProbeFileName(createdAt),
	}
}

// ProbeFileName returns test_<epoch millis>.txt. Two probes created in
// the same millisecond get the same name. Write refuses to overwrite an
// existing file, so the second one fails rather than clobbering the first.
func ProbeFileName(createdAt time.Time) string {
	return fmt.Sprintf("%s%d%s", constants.ProbeFilePrefix, createdAt.UnixMilli(), constants.ProbeFileSuffix)
}

// DownloadFileName returns the local name for the downloaded copy
// of the object named key.
func DownloadFileName(key string) string {
	return constants.DownloadFilePrefix + key
}

// Path is the absolute path of the probe file.
func (p *ProbeFile) Path() string {
	return filepath.Join(p.Dir, p.Name)
}

// DownloadPath is where the downloaded copy of the probe is written.
// The object key stays the same; only the local name changes.
func (p *ProbeFile) DownloadPath() string {
	return filepath.Join(p.Dir, DownloadFileName(p.Name))
}

// Write creates the probe file. It fails if the file already exists.
// A failed write leaves the partial file in place, and the upload step
// sends whatever made it to disk.
func (p *ProbeFile) Write() error {
	file, err := os.OpenFile(p.Path(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	_, err = file.WriteString(p.Content)
	closeErr := file.Close()
	if err != nil {
		return err
	}
	return closeErr
}
