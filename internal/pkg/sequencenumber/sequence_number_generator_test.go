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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateWith(t *testing.T) {
	now := func() time.Time {
		return time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	}
	sng := NewGeneratorWith("CMD", now, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name     string
		input    int64
		expected string
	}{
		{
			name:     "最小输入",
			input:    1,
			expected: "CMD-20240315-0001NUFOJC",
		},
		{
			name:     "超过四位取后四位",
			input:    123456789,
			expected: "CMD-20240315-6789NUFOJC",
		},
		{
			name:     "四位最大值",
			input:    9999,
			expected: "CMD-20240315-9999NUFOJC",
		},
		{
			name:     "后四位全为零",
			input:    10000,
			expected: "CMD-20240315-0000NUFOJC",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sn, err := sng.Generate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, sn)
		})
	}
}

func TestGenerator_ShortUUID(t *testing.T) {
	sng := NewGeneratorWith("CMD", time.Now, func() string { return "abc" })
	_, err := sng.Generate(1)
	assert.Error(t, err)
}

func TestGenerator_Generate(t *testing.T) {
	sn, err := NewGenerator("CMD").Generate(123456789)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sn, "CMD-"+time.Now().Format("20060102")+"-6789"))
	assert.Len(t, sn, len("CMD-20240315-6789")+randomLength)
}
