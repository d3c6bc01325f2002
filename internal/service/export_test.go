package service

import (
	"context"
	"time"
)

func SetClock(s *Service, now func() time.Time) {
	s.now = now
}

func UsernameBase(email, provider, subject string) string {
	return usernameBase(email, provider, subject)
}

func UniqueUsername(ctx context.Context, s *Service, base string) (string, error) {
	return s.uniqueUsername(ctx, base)
}

func SetCodeHashCost(s *Service, cost int) {
	s.codeHashCost = cost
}
