package matches

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	keyUpcoming = "matches:upcoming"
	keyLive     = "matches:live"

	liveTTL = 10 * time.Minute
)

// upcomingTTL picks the revalidation interval for the upcoming-fixtures
// cache: half an hour during the day, two hours overnight when nothing
// changes.
func upcomingTTL(now time.Time) time.Duration {
	h := now.Hour()
	if h < 6 {
		return 2 * time.Hour
	}
	return 30 * time.Minute
}

// Service serves match lists, preferring the cache and falling back to the
// upstream. Cache failures degrade to direct fetches rather than erroring.
type Service struct {
	client *Client
	cache  *Cache
	log    *zap.Logger
}

func NewService(client *Client, cache *Cache, log *zap.Logger) *Service {
	return &Service{client: client, cache: cache, log: log}
}

func (s *Service) Upcoming(ctx context.Context, category string) ([]Match, error) {
	var cached []Match
	if s.cache != nil {
		if ok, err := s.cache.Get(ctx, keyUpcoming, &cached); err != nil {
			s.log.Warn("match cache read failed", zap.Error(err))
		} else if ok {
			return filterCategory(cached, category), nil
		}
	}
	list, err := s.client.Upcoming(ctx, time.Now().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, keyUpcoming, list, upcomingTTL(time.Now())); err != nil {
			s.log.Warn("match cache write failed", zap.Error(err))
		}
	}
	return filterCategory(list, category), nil
}

func (s *Service) Live(ctx context.Context, category string) ([]Match, error) {
	var cached []Match
	if s.cache != nil {
		if ok, err := s.cache.Get(ctx, keyLive, &cached); err != nil {
			s.log.Warn("match cache read failed", zap.Error(err))
		} else if ok {
			return filterCategory(cached, category), nil
		}
	}
	list, err := s.client.Live(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, keyLive, list, liveTTL); err != nil {
			s.log.Warn("match cache write failed", zap.Error(err))
		}
	}
	return filterCategory(list, category), nil
}

func filterCategory(list []Match, category string) []Match {
	if category == "" {
		return list
	}
	out := make([]Match, 0, len(list))
	for _, m := range list {
		if strings.EqualFold(m.Category, category) {
			out = append(out, m)
		}
	}
	return out
}
