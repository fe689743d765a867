package storage_test

import (
	"context"
	"errors"
	"testing"

	"collection-manager/core/storage"
	"collection-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "catalog",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		c := new(mocks.Client)
		c.On("BucketExists", mock.Anything, "catalog").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(ctx, c, "catalog", ""))
		c.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		c := new(mocks.Client)
		c.On("BucketExists", mock.Anything, "catalog").Return(false, nil)
		c.On("MakeBucket", mock.Anything, "catalog", mock.Anything).Return(nil)

		assert.NoError(t, storage.EnsureBucket(ctx, c, "catalog", "us-east-1"))
		c.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		c := new(mocks.Client)
		c.On("BucketExists", mock.Anything, "catalog").Return(false, errors.New("unreachable"))

		err := storage.EnsureBucket(ctx, c, "catalog", "")
		assert.ErrorContains(t, err, "unreachable")
	})
}
