// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=./request.go -package=cachemocks -destination=./mocks/request.mock.go RequestCache
type RequestCache interface {
	// Acquire 第一次出现的请求 ID 返回 true
	Acquire(ctx context.Context, requestID string) (bool, error)
	// Release 处理失败时释放，允许客户端用同一个请求 ID 重试
	Release(ctx context.Context, requestID string) error
}

type RequestECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewRequestECache(ec ecache.Cache) RequestCache {
	return &RequestECache{
		ec: &ecache.NamespaceCache{
			Namespace: "order:",
			C:         ec,
		},
		expiration: 24 * time.Hour,
	}
}

func (c *RequestECache) Acquire(ctx context.Context, requestID string) (bool, error) {
	ok, err := c.ec.SetNX(ctx, c.key(requestID), requestID, c.expiration)
	return ok, errors.Wrap(err, "缓存请求ID失败")
}

func (c *RequestECache) Release(ctx context.Context, requestID string) error {
	_, err := c.ec.Delete(ctx, c.key(requestID))
	return errors.Wrap(err, "删除请求ID失败")
}

// 注意 Namespace 设置
func (c *RequestECache) key(requestID string) string {
	return "create:" + requestID
}
