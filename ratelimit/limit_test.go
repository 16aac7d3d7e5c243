// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/ratelimit"
)

func TestNew(t *testing.T) {
	l, err := ratelimit.New(0)
	assert.Nil(t, err, "unlimited")
	assert.Nil(t, l, "unlimited limiter")

	_, err = ratelimit.New(-1)
	assert.Equal(t, fault.ErrInvalidRate, err, "negative rate")

	l, err = ratelimit.New(0.5)
	require.Nil(t, err, "fractional rate")
	assert.Equal(t, 1, l.Burst(), "minimum burst")
}

func TestUnlimited(t *testing.T) {
	start := time.Now()
	for i := 0; i < 1000; i += 1 {
		assert.Nil(t, ratelimit.Limit(nil), "nil limiter")
	}
	assert.Nil(t, ratelimit.LimitN(nil, 5, 1), "nil limiter ignores count")
	assert.True(t, time.Since(start) < time.Second, "nil limiter waited")
}

func TestLimit(t *testing.T) {
	l, err := ratelimit.New(100)
	require.Nil(t, err, "new")

	// burst is available immediately, the rest is paced
	start := time.Now()
	for i := 0; i < 120; i += 1 {
		require.Nil(t, ratelimit.Limit(l), "limit")
	}
	elapsed := time.Since(start)
	assert.True(t, elapsed >= 150*time.Millisecond, "not paced: %s", elapsed)
}

func TestLimitN(t *testing.T) {
	l, err := ratelimit.New(1000)
	require.Nil(t, err, "new")

	assert.Nil(t, ratelimit.LimitN(l, 10, 100), "valid count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(l, 0, 100), "zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(l, 101, 100), "count over maximum")
}

func TestAdjust(t *testing.T) {
	l, err := ratelimit.Adjustable(0)
	require.Nil(t, err, "adjustable")
	require.NotNil(t, l, "adjustable limiter")
	assert.True(t, l.Limit() > 1e9, "zero rate is unlimited: %v", l.Limit())

	assert.Nil(t, ratelimit.Adjust(l, 25), "adjust")
	assert.Equal(t, 25.0, float64(l.Limit()), "adjusted rate")

	assert.Nil(t, ratelimit.Adjust(l, 0), "remove limit")
	assert.True(t, l.Limit() > 1e9, "limit removed: %v", l.Limit())

	assert.Equal(t, fault.ErrInvalidRate, ratelimit.Adjust(l, -3), "negative rate")
	assert.Equal(t, fault.ErrNotInitialised, ratelimit.Adjust(nil, 3), "nil limiter")

	_, err = ratelimit.Adjustable(-1)
	assert.Equal(t, fault.ErrInvalidRate, err, "negative adjustable")
}
