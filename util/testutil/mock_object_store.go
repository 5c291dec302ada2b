package testutil

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/APTrust/bucket-tester/models/common"
	"github.com/APTrust/bucket-tester/network"
	"github.com/op/go-logging"
)

// PutCall records one call to MockObjectStore.PutObject.
type PutCall struct {
	Bucket   string
	Key      string
	FilePath string
	// Body is what was in the file at the time of the call, or nil
	// if the file could not be read.
	Body []byte
}

// GetCall records one call to MockObjectStore.GetObject.
type GetCall struct {
	Bucket string
	Key    string
}

// MockObjectStore is an in-memory network.ObjectStore that records
// every call it receives. Set PutError or GetError to simulate
// failures from the storage service.
type MockObjectStore struct {
	Objects  map[string][]byte
	Puts     []PutCall
	Gets     []GetCall
	PutError error
	GetError error
}

var _ network.ObjectStore = (*MockObjectStore)(nil)

func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{
		Objects: make(map[string][]byte),
		Puts:    make([]PutCall, 0),
		Gets:    make([]GetCall, 0),
	}
}

func (m *MockObjectStore) PutObject(ctx context.Context, bucket, key, filePath string) error {
	body, readErr := os.ReadFile(filePath)
	m.Puts = append(m.Puts, PutCall{
		Bucket:   bucket,
		Key:      key,
		FilePath: filePath,
		Body:     body,
	})
	if m.PutError != nil {
		return m.PutError
	}
	if readErr != nil {
		return common.NewStorageError("PutObject", bucket, key, 0, "", readErr)
	}
	m.Objects[bucket+"/"+key] = body
	return nil
}

func (m *MockObjectStore) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	m.Gets = append(m.Gets, GetCall{
		Bucket: bucket,
		Key:    key,
	})
	if m.GetError != nil {
		return nil, m.GetError
	}
	data, ok := m.Objects[bucket+"/"+key]
	if !ok {
		return nil, common.NewStorageError("GetObject", bucket, key, http.StatusNotFound, "NoSuchKey",
			fmt.Errorf("The specified key does not exist."))
	}
	return data, nil
}

// CallCount returns the total number of storage calls received.
func (m *MockObjectStore) CallCount() int {
	return len(m.Puts) + len(m.Gets)
}

// MockClientFactory hands out a single MockObjectStore and counts how
// many times a client was requested. Set Error to simulate a failure
// to construct the client.
type MockClientFactory struct {
	Store *MockObjectStore
	Calls int
	Error error
}

func NewMockClientFactory() *MockClientFactory {
	return &MockClientFactory{
		Store: NewMockObjectStore(),
	}
}

// NewClient satisfies network.ClientFactory.
func (f *MockClientFactory) NewClient(config *common.Config, logger *logging.Logger) (network.ObjectStore, error) {
	f.Calls++
	if f.Error != nil {
		return nil, f.Error
	}
	return f.Store, nil
}
