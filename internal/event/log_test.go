// SPDX-License-Identifier: MIT

package event_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvsci/internal/event"
)

func TestSetLevel(t *testing.T) {
	defer event.Log.SetLevel(logrus.InfoLevel)

	assert.NoError(t, event.SetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, event.Log.GetLevel())
	assert.Error(t, event.SetLevel("chatty"))
	assert.Equal(t, logrus.DebugLevel, event.Log.GetLevel())
}
