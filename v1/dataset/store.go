package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/arenstad/milsearch/v1/logger"
)

// Store persists generated datasets as JSON objects in MinIO, the object
// store that is already part of the compose topology. Storing the dataset
// next to the service under test lets latency runs reuse one fixed corpus
// across hosts and sessions.
type Store struct {
	client *minio.Client
	cfg    StoreConfig
	log    *logger.Logger
}

// NewStore connects to MinIO and ensures the dataset bucket exists.
func NewStore(cfg StoreConfig, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.NewNop()
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	s := &Store{client: client, cfg: cfg, log: log}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", s.cfg.Bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("make bucket %q: %w", s.cfg.Bucket, err)
	}
	s.log.Info("Created dataset bucket", nil, map[string]interface{}{
		"bucket": s.cfg.Bucket,
	})
	return nil
}

// Put uploads a dataset and returns the object key it was stored under.
// Keys carry a uuid suffix so repeated uploads never collide.
func (s *Store) Put(ctx context.Context, ds Dataset) (string, error) {
	payload, err := json.Marshal(ds)
	if err != nil {
		return "", fmt.Errorf("encode dataset: %w", err)
	}

	key := fmt.Sprintf("%s/dataset-%s.json", s.cfg.KeyPrefix, uuid.NewString())
	_, err = s.client.PutObject(ctx, s.cfg.Bucket, key,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}

	s.log.Info("Uploaded dataset", nil, map[string]interface{}{
		"bucket": s.cfg.Bucket,
		"key":    key,
		"bytes":  len(payload),
	})
	return key, nil
}

// Get downloads and decodes a dataset previously stored with Put.
func (s *Store) Get(ctx context.Context, key string) (Dataset, error) {
	var ds Dataset

	obj, err := s.client.GetObject(ctx, s.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return ds, fmt.Errorf("get object %q: %w", key, err)
	}
	defer func() {
		if cerr := obj.Close(); cerr != nil {
			s.log.Warn("Failed to close object reader", cerr, nil)
		}
	}()

	payload, err := io.ReadAll(obj)
	if err != nil {
		return ds, fmt.Errorf("read object %q: %w", key, err)
	}
	if err := json.Unmarshal(payload, &ds); err != nil {
		return ds, fmt.Errorf("decode dataset %q: %w", key, err)
	}
	return ds, nil
}

// List returns the keys of all stored datasets under the configured prefix.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var keys []string
	for obj := range s.client.ListObjects(ctx, s.cfg.Bucket, minio.ListObjectsOptions{
		Prefix:    s.cfg.KeyPrefix + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}
