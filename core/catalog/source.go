package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"collection-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// Source supplies a complete catalog snapshot.
type Source interface {
	// Key identifies the snapshot location; sources with equal keys load the same data.
	Key() string
	// Load reads and decodes the full snapshot.
	Load(ctx context.Context) (*Catalog, error)
}

// FileSource loads a snapshot from a directory on disk.
type FileSource struct {
	dir string
}

// NewFileSource creates a source reading from dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Key returns the source key.
func (s *FileSource) Key() string {
	return "file|" + s.dir
}

// Load reads sets.json, cards.json and (optionally) migrations.json.
func (s *FileSource) Load(ctx context.Context) (*Catalog, error) {
	var cat Catalog
	var err error

	if cat.Sets, err = decodeFile(filepath.Join(s.dir, SetsObject), DecodeSets); err != nil {
		return nil, err
	}
	if cat.Cards, err = decodeFile(filepath.Join(s.dir, CardsObject), DecodeCards); err != nil {
		return nil, err
	}
	cat.Migrations, err = decodeFile(filepath.Join(s.dir, MigrationsObject), DecodeMigrations)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &cat, nil
}

func decodeFile[T any](name string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// StorageSource loads a snapshot from objects under a prefix in an object storage bucket.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSource creates a source reading <prefix>/sets.json etc. from bucket.
func NewStorageSource(client storage.Client, bucket, prefix string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the source key.
func (s *StorageSource) Key() string {
	return "storage|" + s.bucket + "|" + s.prefix
}

// ObjectName returns the full object name for a snapshot file.
func (s *StorageSource) ObjectName(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// Load fetches the three snapshot objects concurrently.
func (s *StorageSource) Load(ctx context.Context) (*Catalog, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s not found", s.bucket)
	}

	var cat Catalog
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		cat.Sets, err = decodeObject(gctx, s, SetsObject, DecodeSets)
		return err
	})
	g.Go(func() error {
		var err error
		cat.Cards, err = decodeObject(gctx, s, CardsObject, DecodeCards)
		return err
	})
	g.Go(func() error {
		migrations, err := decodeObject(gctx, s, MigrationsObject, DecodeMigrations)
		if err != nil {
			if isNoSuchKey(err) {
				return nil
			}
			return err
		}
		cat.Migrations = migrations
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Missing returns the names of required snapshot objects absent from the bucket.
func (s *StorageSource) Missing(ctx context.Context) ([]string, error) {
	found := make(map[string]struct{})
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		found[obj.Key] = struct{}{}
	}

	var missing []string
	for _, name := range []string{SetsObject, CardsObject} {
		if _, ok := found[s.ObjectName(name)]; !ok {
			missing = append(missing, s.ObjectName(name))
		}
	}
	return missing, nil
}

func decodeObject[T any](ctx context.Context, s *StorageSource, name string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	objName := s.ObjectName(name)
	reader, err := s.client.GetObject(ctx, s.bucket, objName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", objName, err)
	}
	defer reader.Close()

	out, err := decode(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", objName, err)
	}
	return out, nil
}

func isNoSuchKey(err error) bool {
	var resp minio.ErrorResponse
	return errors.As(err, &resp) && resp.Code == "NoSuchKey"
}

// NewSource builds the source selected by cfg. client may be nil for the file source.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceFile, "":
		return NewFileSource(cfg.Path), nil
	case SourceStorage:
		if client == nil {
			return nil, errors.New("storage source requires a storage client")
		}
		return NewStorageSource(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// Upload copies the snapshot files found in dir to the bucket under the source prefix.
// sets.json and cards.json are required; migrations.json is uploaded when present.
// It returns the uploaded object names.
func (s *StorageSource) Upload(ctx context.Context, dir string) ([]string, error) {
	var uploaded []string
	for _, name := range []string{SetsObject, CardsObject, MigrationsObject} {
		objName, err := s.uploadFile(ctx, filepath.Join(dir, name), name)
		if err != nil {
			if name == MigrationsObject && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return uploaded, err
		}
		uploaded = append(uploaded, objName)
	}
	return uploaded, nil
}

func (s *StorageSource) uploadFile(ctx context.Context, file, name string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	objName := s.ObjectName(name)
	_, err = s.client.PutObject(ctx, s.bucket, objName, f, info.Size(), minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objName, err)
	}
	return objName, nil
}
