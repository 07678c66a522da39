package objects_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"filestore/core/storage"
	"filestore/core/storage/mocks"
	"filestore/feature/objects"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, mockClient *mocks.Client) *objects.Service {
	t.Helper()

	cfg := storage.Config{
		Endpoint:  "s3.example.com",
		AccessKey: "testkey",
		SecretKey: "testsecret",
		Secure:    true,
		Bucket:    "media",
	}
	backend, err := storage.NewWithClient(cfg, mockClient)
	assert.NoError(t, err)
	return objects.NewService(backend, zap.NewNop())
}

func TestService_UploadUnknownSize(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "media", "x.txt", mock.Anything, int64(5), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := newTestService(t, mockClient)

	name, err := svc.Upload(context.Background(), "x.txt", strings.NewReader("hello"), -1, "text/plain")
	assert.NoError(t, err)
	assert.Equal(t, "x.txt", name)
	mockClient.AssertExpectations(t)
}

func TestService_DownloadRoundTrip(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "media", "x.txt", mock.Anything).
		Return(mocks.NewObject([]byte("hello"), "text/plain"), nil)

	svc := newTestService(t, mockClient)

	file, err := svc.Download(context.Background(), "x.txt")
	assert.NoError(t, err)
	assert.Equal(t, "text/plain", file.ContentType())

	data, err := io.ReadAll(file)
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestService_URL(t *testing.T) {
	svc := newTestService(t, new(mocks.Client))
	assert.Equal(t, "https://s3.example.com/media/a/b.png", svc.URL("a/b.png"))
}
