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
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/epicerie/internal/user/internal/domain"
	"github.com/redis/go-redis/v9"
)

var ErrKeyNotExist = redis.Nil

type ClientCache interface {
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.Client, error)
	Set(ctx context.Context, c domain.Client) error
}

type ClientECache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

// NewClientECache 缓存里面不会放密码
func NewClientECache(c ecache.Cache) ClientCache {
	return &ClientECache{
		cache: &ecache.NamespaceCache{
			Namespace: "user:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (c *ClientECache) Delete(ctx context.Context, id int64) error {
	_, err := c.cache.Delete(ctx, c.key(id))
	return err
}

func (c *ClientECache) Get(ctx context.Context, id int64) (domain.Client, error) {
	var res domain.Client
	err := c.cache.Get(ctx, c.key(id)).JSONScan(&res)
	return res, err
}

func (c *ClientECache) Set(ctx context.Context, cl domain.Client) error {
	cl.Password = ""
	data, err := json.Marshal(cl)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(cl.ID), data, c.expiration)
}

func (c *ClientECache) key(id int64) string {
	return fmt.Sprintf("client:info:%d", id)
}
