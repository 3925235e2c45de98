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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrClientDuplicate 邮箱唯一索引冲突
var ErrClientDuplicate = errors.New("用户已经注册")

type ClientDAO interface {
	Insert(ctx context.Context, c Client) (int64, error)
	UpdateProfile(ctx context.Context, c Client) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	FindByID(ctx context.Context, id int64) (Client, error)
	FindByEmail(ctx context.Context, email string) (Client, error)
}

type GORMClientDAO struct {
	db *egorm.Component
}

func NewGORMClientDAO(db *egorm.Component) ClientDAO {
	return &GORMClientDAO{db: db}
}

func (d *GORMClientDAO) Insert(ctx context.Context, c Client) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := d.db.WithContext(ctx).Create(&c).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrClientDuplicate
		}
	}
	return c.Id, err
}

// UpdateProfile 邮箱和密码不在这里修改
func (d *GORMClientDAO) UpdateProfile(ctx context.Context, c Client) error {
	return d.db.WithContext(ctx).Model(&Client{}).Where("id = ?", c.Id).
		Updates(map[string]any{
			"phone":       c.Phone,
			"first_name":  c.FirstName,
			"last_name":   c.LastName,
			"street":      c.Street,
			"postal_code": c.PostalCode,
			"city":        c.City,
			"country":     c.Country,
			"lat":         c.Lat,
			"lon":         c.Lon,
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (d *GORMClientDAO) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return d.db.WithContext(ctx).Model(&Client{}).Where("id = ?", id).
		Updates(map[string]any{
			"password": hash,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *GORMClientDAO) FindByID(ctx context.Context, id int64) (Client, error) {
	var c Client
	err := d.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (d *GORMClientDAO) FindByEmail(ctx context.Context, email string) (Client, error) {
	var c Client
	err := d.db.WithContext(ctx).First(&c, "email = ?", email).Error
	return c, err
}

type Client struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	Email      string `gorm:"type:varchar(256);uniqueIndex;not null"`
	Phone      string `gorm:"type:varchar(32)"`
	FirstName  string `gorm:"type:varchar(128)"`
	LastName   string `gorm:"type:varchar(128)"`
	Password   string `gorm:"type:varchar(128);not null"`
	Street     string `gorm:"type:varchar(256)"`
	PostalCode string `gorm:"type:varchar(16)"`
	City       string `gorm:"type:varchar(128)"`
	Country    string `gorm:"type:varchar(64)"`
	Lat        sql.NullFloat64
	Lon        sql.NullFloat64
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Client{})
}
