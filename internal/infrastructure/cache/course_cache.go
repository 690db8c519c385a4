package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
)

const versionKey = "courses:version"

// CourseStore is the repository being cached.
type CourseStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Course, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, f query.Filter, p query.Page) ([]domain.Course, error)
	Create(ctx context.Context, c *domain.Course) error
	Update(ctx context.Context, id int64, u domain.CourseUpdate) (*domain.Course, error)
	Delete(ctx context.Context, id int64) (*domain.Course, error)
}

type HitRecorder interface {
	CacheHit(hit bool)
}

// CourseCache is a read-through cache in front of a CourseStore. Detail and
// list keys embed a version counter that every write bumps. A reader takes the
// version before it reads the store, so a row fetched before a concurrent
// write lands under a retired version and is never served.
type CourseCache struct {
	store   CourseStore
	rdb     redis.Cmdable
	ttl     time.Duration
	log     *slog.Logger
	metrics HitRecorder
}

func NewCourseCache(store CourseStore, rdb redis.Cmdable, ttl time.Duration, log *slog.Logger, metrics HitRecorder) *CourseCache {
	if log == nil {
		log = slog.Default()
	}
	return &CourseCache{store: store, rdb: rdb, ttl: ttl, log: log, metrics: metrics}
}

func detailKey(version, id int64) string {
	return "course:detail:v" + strconv.FormatInt(version, 10) + ":" + strconv.FormatInt(id, 10)
}

func (c *CourseCache) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	version, ok := c.version(ctx)
	if ok {
		var cached domain.Course
		if c.read(ctx, detailKey(version, id), &cached) {
			return &cached, nil
		}
	}

	course, err := c.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ok {
		c.write(ctx, detailKey(version, id), course)
	}
	return course, nil
}

func (c *CourseCache) GetBySlug(ctx context.Context, slug string) (*domain.Course, error) {
	return c.store.GetBySlug(ctx, slug)
}

func (c *CourseCache) Exists(ctx context.Context, id int64) (bool, error) {
	return c.store.Exists(ctx, id)
}

func (c *CourseCache) List(ctx context.Context, f query.Filter, p query.Page) ([]domain.Course, error) {
	key, ok := c.listKey(ctx, f, p)
	if ok {
		var cached []domain.Course
		if c.read(ctx, key, &cached) {
			return cached, nil
		}
	}

	courses, err := c.store.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	if ok {
		c.write(ctx, key, courses)
	}
	return courses, nil
}

func (c *CourseCache) Create(ctx context.Context, course *domain.Course) error {
	if err := c.store.Create(ctx, course); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CourseCache) Update(ctx context.Context, id int64, u domain.CourseUpdate) (*domain.Course, error) {
	course, err := c.store.Update(ctx, id, u)
	c.invalidate(ctx)
	return course, err
}

func (c *CourseCache) Delete(ctx context.Context, id int64) (*domain.Course, error) {
	prior, err := c.store.Delete(ctx, id)
	c.invalidate(ctx)
	return prior, err
}

// version returns the current cache generation. ok is false when redis is
// unreachable.
func (c *CourseCache) version(ctx context.Context) (int64, bool) {
	v, err := c.rdb.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.WarnContext(ctx, "course cache unavailable", "error", err)
		return 0, false
	}
	return v, true
}

// listKey derives the key for a page from the current version and a digest
// of the filter.
func (c *CourseCache) listKey(ctx context.Context, f query.Filter, p query.Page) (string, bool) {
	version, ok := c.version(ctx)
	if !ok {
		return "", false
	}

	raw, err := json.Marshal(struct {
		Clauses []query.Clause
		Page    query.Page
	}{f.Clauses, p})
	if err != nil {
		return "", false
	}
	sum := sha1.Sum(raw)
	return "courses:list:v" + strconv.FormatInt(version, 10) + ":" + hex.EncodeToString(sum[:]), true
}

func (c *CourseCache) read(ctx context.Context, key string, dest any) bool {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WarnContext(ctx, "course cache read failed", "key", key, "error", err)
		}
		c.hit(false)
		return false
	}
	if err := json.Unmarshal(val, dest); err != nil {
		c.log.WarnContext(ctx, "course cache entry corrupt", "key", key, "error", err)
		c.hit(false)
		return false
	}
	c.hit(true)
	return true
}

func (c *CourseCache) write(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "course cache write failed", "key", key, "error", err)
	}
}

// invalidate retires every cached detail and list page. Old entries are
// left to expire.
func (c *CourseCache) invalidate(ctx context.Context) {
	if err := c.rdb.Incr(ctx, versionKey).Err(); err != nil {
		c.log.WarnContext(ctx, "course cache version bump failed", "error", err)
	}
}

func (c *CourseCache) hit(ok bool) {
	if c.metrics != nil {
		c.metrics.CacheHit(ok)
	}
}
