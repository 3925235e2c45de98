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

package sequencenumber

import (
	"fmt"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// ShortUUIDGenerateFunc 定义生成ShortUUID的函数类型
type ShortUUIDGenerateFunc func() string

// Generator 生成业务编号，格式为 前缀-日期-ID后四位+随机串
type Generator struct {
	prefix           string
	nowFunc          func() time.Time
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

// NewGeneratorWith 创建一个Generator实例，时间和随机串由调用方指定
func NewGeneratorWith(prefix string, now func() time.Time, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		prefix:           prefix,
		nowFunc:          now,
		shortUUIDGenFunc: uuidGen,
	}
}

// NewGenerator 创建一个Generator实例
func NewGenerator(prefix string) *Generator {
	return NewGeneratorWith(prefix, time.Now, shortuuid.New)
}

// Generate 生成形如 CMD-20240315-0042K7QZ2M 的编号
// 中间四位为 id 的后四位，末尾六位随机串用于同一天同一用户下的区分
func (s *Generator) Generate(id int64) (string, error) {
	uuid := s.shortUUIDGenFunc()
	if len(uuid) < randomLength {
		return "", fmt.Errorf("随机串长度不足: %s", uuid)
	}
	date := s.nowFunc().Format("20060102")
	lastFour := fmt.Sprintf("%04d", id%10000)
	return fmt.Sprintf("%s-%s-%s%s", s.prefix, date, lastFour,
		strings.ToUpper(uuid[:randomLength])), nil
}

const randomLength = 6
