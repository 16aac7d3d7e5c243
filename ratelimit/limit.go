// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - pace operations with a token bucket
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/fault"
)

// New - limiter allowing perSecond operations with a burst of one
// second's worth; zero means unlimited and returns nil
func New(perSecond float64) (*rate.Limiter, error) {
	if perSecond < 0 {
		return nil, fault.ErrInvalidRate
	}
	if 0 == perSecond {
		return nil, nil
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst), nil
}

// Adjustable - like New but always returns a limiter so that its rate
// can be changed later, zero gives an infinite rate
func Adjustable(perSecond float64) (*rate.Limiter, error) {
	limiter, err := New(perSecond)
	if nil != err {
		return nil, err
	}
	if nil == limiter {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return limiter, nil
}

// Adjust - change the rate of a running limiter, zero removes the limit
func Adjust(limiter *rate.Limiter, perSecond float64) error {
	if perSecond < 0 {
		return fault.ErrInvalidRate
	}
	if nil == limiter {
		return fault.ErrNotInitialised
	}
	if 0 == perSecond {
		limiter.SetLimit(rate.Inf)
	} else {
		limiter.SetLimit(rate.Limit(perSecond))
	}
	return nil
}

// Limit - limiting for a single operation, a nil limiter never waits
func Limit(limiter *rate.Limiter) error {
	if nil == limiter {
		return nil
	}
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// LimitN - limiting for a batch of operations
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if nil == limiter {
		return nil
	}

	// invalid count gets limited as a single operation
	if count <= 0 || count > maximumCount {

		r := limiter.Reserve()
		if !r.OK() {
			return fault.ErrRateLimiting
		}
		time.Sleep(r.Delay())

		return fault.ErrInvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())

	return nil
}
