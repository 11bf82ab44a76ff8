package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a requested key does not exist in the store.
var ErrKeyNotFound = errors.New("key not found")

// KV 定義鍵值儲存介面：字串鍵、JSON 序列化後的字串值。
// 集合資料存在固定的 pa_* 鍵之下，實作可為本機檔案、Redis 或 Postgres。
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

type FakeKV struct {
	GetFn    func(ctx context.Context, key string) (string, error)
	SetFn    func(ctx context.Context, key string, value string) error
	DeleteFn func(ctx context.Context, key string) error
	PingFn   func(ctx context.Context) error
	CloseFn  func() error
}

func (f *FakeKV) Get(ctx context.Context, key string) (string, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

func (f *FakeKV) Set(ctx context.Context, key string, value string) error {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value)
	}
	panic("unexpected Set")
}

func (f *FakeKV) Delete(ctx context.Context, key string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, key)
	}
	panic("unexpected Delete")
}

func (f *FakeKV) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return nil
}

func (f *FakeKV) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
