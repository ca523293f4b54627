// Copyright 2025 PelicanDB, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"context"
	"testing"

	"github.com/pingcap/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	cfg := NewLogConfig("info", DefaultLogFormat, log.FileLogConfig{}, false)
	require.NoError(t, InitLogger(cfg))
	require.NotNil(t, BgLogger())
	BgLogger().Info("logger initialized")

	require.Error(t, InitLogger(NewLogConfig("not-a-level", DefaultLogFormat, log.FileLogConfig{}, false)))
}

func TestContextLogger(t *testing.T) {
	cfg := NewLogConfig("info", DefaultLogFormat, log.FileLogConfig{}, false)
	require.NoError(t, InitLogger(cfg))

	ctx := context.Background()
	require.Same(t, BgLogger(), Logger(ctx))

	withFields := WithLogger(ctx, zap.String("session", "s1"))
	require.NotSame(t, BgLogger(), Logger(withFields))
}
