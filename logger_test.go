// Copyright 2023 strand-http
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

package strand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	buf := new(strings.Builder)
	logger := NewLoggerFromWriter(buf, "")

	logger.Tracef("trace %d", 1)
	logger.Debugf("debug")
	logger.Infof("info")
	logger.Warnf("warn")
	logger.Errorf("error")

	out := buf.String()
	assert.Contains(t, out, "[T] trace 1")
	assert.Contains(t, out, "[D] debug")
	assert.Contains(t, out, "[I] info")
	assert.Contains(t, out, "[W] warn")
	assert.Contains(t, out, "[E] error")
}

func TestColorLogger(t *testing.T) {
	buf := new(strings.Builder)
	logger := NewColorLogger(buf, "")
	logger.Errorf("on fire")

	out := buf.String()
	assert.Contains(t, out, "[E] ")
	assert.Contains(t, out, "on fire")
}
