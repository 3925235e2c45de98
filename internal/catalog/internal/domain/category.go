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

const MaxCategoryLevel = 3

// Category 三级分类，Level 从 1 开始
type Category struct {
	ID       int64
	ParentID int64
	Name     string
	Level    int
	Children []Category
	Ctime    int64
	Utime    int64
}

// BuildTree 把平铺的分类组装成树，丢弃找不到父节点的分类
func BuildTree(categories []Category) []Category {
	children := make(map[int64][]Category, len(categories))
	for _, c := range categories {
		children[c.ParentID] = append(children[c.ParentID], c)
	}
	var build func(parentID int64) []Category
	build = func(parentID int64) []Category {
		nodes := children[parentID]
		res := make([]Category, 0, len(nodes))
		for _, n := range nodes {
			n.Children = build(n.ID)
			res = append(res, n)
		}
		return res
	}
	return build(0)
}

// Descendants 返回 id 自身以及它下面所有分类的 id
func Descendants(categories []Category, id int64) []int64 {
	children := make(map[int64][]int64, len(categories))
	for _, c := range categories {
		children[c.ParentID] = append(children[c.ParentID], c.ID)
	}
	res := []int64{id}
	for i := 0; i < len(res); i++ {
		res = append(res, children[res[i]]...)
	}
	return res
}
