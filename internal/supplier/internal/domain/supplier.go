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
	"github.com/shopspring/decimal"
)

var (
	ErrSupplierNotFound   = errors.New("供应商不存在")
	ErrDuplicateEmail     = errors.New("邮箱已经被使用")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrInvalidZone        = errors.New("配送范围配置不合法")
	ErrProductNotOwned    = errors.New("商品不属于当前供应商")
	ErrOrderLineNotOwned  = errors.New("订单行不属于当前供应商")
)

type ZoneType string

const (
	ZoneTypeNational    ZoneType = "national"
	ZoneTypeDepartments ZoneType = "departments"
	ZoneTypeCities      ZoneType = "cities"
	ZoneTypeRadius      ZoneType = "radius"
)

func (z ZoneType) Valid() bool {
	switch z {
	case ZoneTypeNational, ZoneTypeDepartments, ZoneTypeCities, ZoneTypeRadius:
		return true
	default:
		return false
	}
}

// Zone 配送范围，四种类型只会生效一种
type Zone struct {
	Type ZoneType
	// 省份编号，例如 75、69
	Departments []string
	Cities      []string
	RadiusKm    *float64
}

// FeePolicy 配送费 = 起步价 + 距离 * 每公里单价，达到包邮门槛免配送费
type FeePolicy struct {
	BaseFee       int64
	PerKmFee      int64
	FreeThreshold *int64
}

type Address struct {
	Street     string
	PostalCode string
	City       string
	Country    string
}

type Supplier struct {
	ID             int64
	Name           string
	Trade          string
	Email          string
	Phone          string
	Password       string
	Address        Address
	Location       *geo.Point
	Description    string
	ProductionType string
	LeadTimeDays   int
	// 逗号分隔的配送日，例如 "mardi,vendredi"
	DeliveryDays string
	Zone         Zone
	Fee          FeePolicy
	Ctime        int64
	Utime        int64
}

// Destination 收货地址，字段都可能缺失
type Destination struct {
	PostalCode string
	City       string
	Location   *geo.Point
}

func (s Supplier) CanDeliverTo(dst Destination) bool {
	switch s.Zone.Type {
	case ZoneTypeNational:
		return true
	case ZoneTypeDepartments:
		if len(dst.PostalCode) < 2 {
			return false
		}
		dept := dst.PostalCode[:2]
		for _, d := range s.Zone.Departments {
			if strings.TrimSpace(d) == dept {
				return true
			}
		}
		return false
	case ZoneTypeCities:
		city := strings.TrimSpace(dst.City)
		if city == "" {
			return false
		}
		for _, c := range s.Zone.Cities {
			if strings.EqualFold(strings.TrimSpace(c), city) {
				return true
			}
		}
		return false
	case ZoneTypeRadius:
		if s.Zone.RadiusKm == nil {
			return false
		}
		dist, ok := s.DistanceTo(dst)
		return ok && dist <= *s.Zone.RadiusKm
	default:
		return false
	}
}

// DistanceTo 任意一方缺少坐标时返回 false
func (s Supplier) DistanceTo(dst Destination) (float64, bool) {
	if s.Location == nil || dst.Location == nil {
		return 0, false
	}
	return geo.Haversine(*s.Location, *dst.Location), true
}

// DeliveryFee 单位分，distanceKm 为 nil 时只收起步价
func (s Supplier) DeliveryFee(subtotal int64, distanceKm *float64) int64 {
	if s.Fee.FreeThreshold != nil && subtotal >= *s.Fee.FreeThreshold {
		return 0
	}
	if distanceKm == nil {
		return s.Fee.BaseFee
	}
	perKm := decimal.NewFromFloat(*distanceKm).Mul(decimal.NewFromInt(s.Fee.PerKmFee))
	return s.Fee.BaseFee + perKm.Round(0).IntPart()
}

// DeliveryCheck 配送检查的结果
type DeliveryCheck struct {
	Eligible   bool
	DistanceKm *float64
	Fee        int64
}

// Dashboard 供应商后台首页的统计数据
type Dashboard struct {
	ProductCount       int64
	ActiveProductCount int64
	OrderCount         int64
	InFlightOrderCount int64
	DoneOrderCount     int64
}

func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}
