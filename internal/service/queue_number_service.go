package service

import (
	"context"
	"fmt"
	"time"

	"hospital-backend/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// nextQueueNumberScript raises the daily counter to at least ARGV[1] (the
// highest number already stored in the database), increments it and
// refreshes its TTL, all in one atomic step.
var nextQueueNumberScript = redis.NewScript(`
	local current = tonumber(redis.call('GET', KEYS[1]) or '0')
	local floor = tonumber(ARGV[1])
	if current < floor then
		redis.call('SET', KEYS[1], floor)
	end
	local nextNumber = redis.call('INCR', KEYS[1])
	redis.call('EXPIRE', KEYS[1], ARGV[2])
	return nextNumber
`)

const (
	RedisQueueNumberKeyPrefix = "queue:number:"

	queueDateLayout = "2006-01-02"
)

// QueueNumberer hands out per-day ticket numbers.
type QueueNumberer interface {
	NextQueueNumber(ctx context.Context, date time.Time, floor int) (int, error)
}

// QueueNumberService keeps one Redis counter per calendar date. The database
// unique index on (queue_date, queue_number) stays the source of truth: the
// counter is always seeded with the current MAX(queue_number).
type QueueNumberService struct {
	db          *gorm.DB
	redisClient *redis.Client
	queueRepo   repository.QueueRepository
	log         *logrus.Logger
}

func NewQueueNumberService(db *gorm.DB, redisClient *redis.Client, queueRepo repository.QueueRepository, log *logrus.Logger) *QueueNumberService {
	return &QueueNumberService{
		db:          db,
		redisClient: redisClient,
		queueRepo:   queueRepo,
		log:         log,
	}
}

// NextQueueNumber returns max(counter, floor) + 1. When Redis is unavailable
// it falls back to floor + 1 and relies on the unique index to catch races.
func (s *QueueNumberService) NextQueueNumber(ctx context.Context, date time.Time, floor int) (int, error) {
	key := queueNumberKey(date)
	ttl := int64(calculateTTL(date).Seconds())

	result, err := nextQueueNumberScript.Run(ctx, s.redisClient, []string{key}, floor, ttl).Int()
	if err != nil {
		s.log.Warnf("Failed Lua script NextQueueNumber for %s, falling back to database max: %+v", key, err)
		return floor + 1, nil
	}

	s.log.Debugf("Issued queue number %d for %s", result, key)
	return result, nil
}

// SyncOnStartup seeds today's counter from the database so a flushed Redis
// never hands out a number that is already taken.
func (s *QueueNumberService) SyncOnStartup(ctx context.Context, today time.Time) error {
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.Warnf("Redis is not available, skipping queue sync: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	maxNumber, err := s.queueRepo.MaxQueueNumber(s.db.WithContext(ctx), today)
	if err != nil {
		s.log.Errorf("Failed to read max queue number for %s: %+v", today.Format(queueDateLayout), err)
		return fmt.Errorf("query max queue number: %w", err)
	}

	key := queueNumberKey(today)
	if err := s.redisClient.Set(ctx, key, maxNumber, calculateTTL(today)).Err(); err != nil {
		s.log.Warnf("Failed to seed %s: %+v", key, err)
		return fmt.Errorf("seed %s: %w", key, err)
	}

	s.log.Infof("Queue counter %s synced at %d", key, maxNumber)
	return nil
}

func queueNumberKey(date time.Time) string {
	return RedisQueueNumberKeyPrefix + date.Format(queueDateLayout)
}

// calculateTTL returns TTL: 24 hours after the end of the queue date
func calculateTTL(date time.Time) time.Duration {
	expireAt := date.AddDate(0, 0, 2)
	ttl := time.Until(expireAt)

	if ttl <= 0 {
		// Past date - short TTL for cleanup
		return 1 * time.Minute
	}

	return ttl
}
