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

package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	testCases := []struct {
		name        string
		nodeID      uint
		bizCount    uint
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:     "nodeID超出限制",
			nodeID:   32,
			bizCount: 2,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:     "biz超出限制",
			nodeID:   3,
			bizCount: 33,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedBiz)
			},
		},
		{
			name:        "正常",
			nodeID:      0,
			bizCount:    2,
			wantErrFunc: require.NoError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGenerator(tc.nodeID, tc.bizCount)
			tc.wantErrFunc(t, err)
		})
	}
}

func TestGenerator_Generate(t *testing.T) {
	g, err := NewGenerator(1, 2)
	require.NoError(t, err)
	seen := make(map[int64]struct{}, 20000)
	for _, biz := range []Biz{BizPayment, BizRefund} {
		for i := 0; i < 10000; i++ {
			id, err := g.Generate(biz)
			require.NoError(t, err)
			assert.Equal(t, biz, id.Biz())
			_, ok := seen[id.Int64()]
			require.False(t, ok)
			seen[id.Int64()] = struct{}{}
		}
	}

	_, err = g.Generate(Biz(5))
	assert.ErrorIs(t, err, ErrUnknownBiz)
}
