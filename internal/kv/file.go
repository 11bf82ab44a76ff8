package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV 以本機 JSON 檔案實作 KV，一個鍵對應一個檔案。
// 寫入時先寫暫存檔再 rename，避免斷電留下壞檔。
type FileKV struct {
	dir string
	mu  sync.Mutex
}

// NewFileKV 建立檔案型儲存，資料目錄不存在時會自動建立。
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewFileKV: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileKV) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("Get %s: %w", key, err)
	}
	return string(data), nil
}

func (f *FileKV) Set(ctx context.Context, key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	target := f.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("Set %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("Set %s: %w", key, err)
	}
	return nil
}

func (f *FileKV) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return ErrKeyNotFound
	}
	if err != nil {
		return fmt.Errorf("Delete %s: %w", key, err)
	}
	return nil
}

func (f *FileKV) Ping(ctx context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", f.dir)
	}
	return nil
}

func (f *FileKV) Close() error {
	return nil
}
