package storage

import (
	"errors"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvKV keeps each slot in its own file under a base directory.
type DiskvKV struct {
	d *diskv.Diskv
}

func OpenDiskv(basePath string) (*DiskvKV, error) {
	if basePath == "" {
		return nil, errors.New("storage: data dir is empty")
	}
	return &DiskvKV{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *DiskvKV) Get(key string) ([]byte, bool, error) {
	if !s.d.Has(key) {
		return nil, false, nil
	}
	value, err := s.d.Read(key)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *DiskvKV) Set(key string, value []byte) error {
	return s.d.Write(key, value)
}

func (s *DiskvKV) Close() error {
	return nil
}
