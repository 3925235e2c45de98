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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type CategoryDAO interface {
	Save(ctx context.Context, c Category) (int64, error)
	FindByID(ctx context.Context, id int64) (Category, error)
	FindAll(ctx context.Context) ([]Category, error)
}

type GORMCategoryDAO struct {
	db *egorm.Component
}

func NewGORMCategoryDAO(db *egorm.Component) CategoryDAO {
	return &GORMCategoryDAO{db: db}
}

func (d *GORMCategoryDAO) Save(ctx context.Context, c Category) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "utime"}),
	}).Create(&c).Error
	return c.Id, err
}

func (d *GORMCategoryDAO) FindByID(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *GORMCategoryDAO) FindAll(ctx context.Context) ([]Category, error) {
	var res []Category
	err := d.db.WithContext(ctx).Order("level ASC, id ASC").Find(&res).Error
	return res, err
}

type Category struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// 顶级分类为 0，层级一旦创建就不允许修改
	ParentId int64  `gorm:"index;not null;default:0"`
	Name     string `gorm:"type:varchar(128);not null"`
	Level    int    `gorm:"type:tinyint;not null"`
	Ctime    int64
	Utime    int64
}
