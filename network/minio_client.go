package network

import (
	"context"
	"fmt"
	"io"

	"github.com/APTrust/bucket-tester/models/common"
	"github.com/APTrust/bucket-tester/util"
	"github.com/APTrust/bucket-tester/util/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/op/go-logging"
)

/*
   ObjectStore is the part of the S3 API the bucket tester needs,
   defined formally so we can mock it for testing.

   Note that we define only put and get. The tester checks whether it
   can write and read an object. It does not create buckets, list
   them, or remove objects.
*/

type ObjectStore interface {
	// PutObject uploads the file at filePath to bucket under key.
	PutObject(ctx context.Context, bucket, key, filePath string) error

	// GetObject returns the full contents of the object at bucket/key.
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// ClientFactory builds the ObjectStore for one round trip.
type ClientFactory func(config *common.Config, logger *logging.Logger) (ObjectStore, error)

// MinioObjectStore is an ObjectStore backed by minio-go, bound to a
// single region and a single set of static credentials.
type MinioObjectStore struct {
	client *minio.Client
	logger *logging.Logger
}

// Make sure *MinioObjectStore satisfies ObjectStore.
var _ ObjectStore = (*MinioObjectStore)(nil)

// NewMinioObjectStore creates a minio client for the host, region and
// credentials in config. If the logger is at debug level, minio's HTTP
// trace goes to the log as well.
func NewMinioObjectStore(config *common.Config, logger *logging.Logger) (*MinioObjectStore, error) {
	if config.AccessKeyID == "" || config.SecretAccessKey == "" {
		return nil, fmt.Errorf("access key id and secret access key are both required")
	}
	// Note there's also credentials.NewStaticV2 for providers
	// who don't support V4.
	client, err := minio.New(
		config.S3Host,
		&minio.Options{
			Creds:  credentials.NewStaticV4(config.AccessKeyID, config.SecretAccessKey, ""),
			Secure: config.UseSSL,
			Region: config.Region,
		})
	if err != nil {
		return nil, err
	}
	if logger.IsEnabledFor(logging.DEBUG) {
		client.TraceOn(common.NewTracer(logger))
	}
	return &MinioObjectStore{
		client: client,
		logger: logger,
	}, nil
}

// NewObjectStore is the default ClientFactory.
func NewObjectStore(config *common.Config, logger *logging.Logger) (ObjectStore, error) {
	store, err := NewMinioObjectStore(config, logger)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (s *MinioObjectStore) PutObject(ctx context.Context, bucket, key, filePath string) error {
	size, err := util.FileSize(filePath)
	if err != nil {
		return storageError("PutObject", bucket, key, err)
	}
	opts := minio.PutObjectOptions{
		ContentType: "text/plain",
		Progress:    logger.NewProgressLogger(s.logger, key, size),
		// Without this, minio signs uploads to plain HTTP endpoints
		// with aws-chunked streaming signatures.
		DisableContentSha256: true,
	}
	info, err := s.client.FPutObject(ctx, bucket, key, filePath, opts)
	if err != nil {
		return storageError("PutObject", bucket, key, err)
	}
	s.logger.Debugf("Uploaded %s/%s (%d bytes, etag %s)", bucket, key, info.Size, info.ETag)
	return nil
}

func (s *MinioObjectStore) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, storageError("GetObject", bucket, key, err)
	}
	defer obj.Close()
	// Minio doesn't contact S3 until the first read, so a missing
	// object or bad credentials show up here.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, storageError("GetObject", bucket, key, err)
	}
	s.logger.Debugf("Downloaded %s/%s (%d bytes)", bucket, key, len(data))
	return data, nil
}

func storageError(operation, bucket, key string, err error) *common.StorageError {
	resp := minio.ToErrorResponse(err)
	return common.NewStorageError(operation, bucket, key, resp.StatusCode, resp.Code, err)
}
