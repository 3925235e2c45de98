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

package domain

import (
	"errors"
	"strings"

	"github.com/ecodeclub/epicerie/internal/pkg/geo"
)

var (
	ErrClientNotFound     = errors.New("用户不存在")
	ErrDuplicateEmail     = errors.New("邮箱已经注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
)

type Address struct {
	Street     string
	PostalCode string
	City       string
	Country    string
}

// Client 顾客
type Client struct {
	ID        int64
	Email     string
	Phone     string
	FirstName string
	LastName  string
	// bcrypt 之后的密码
	Password string
	Address  Address
	Location *geo.Point
	Ctime    int64
	Utime    int64
}

func (c Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
