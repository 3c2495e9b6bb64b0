package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/appointment-api/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-api/internal/models"
)

// Optimistic transactions are retried this many times when a watched key
// changes underneath them.
const redisWatchRetries = 3

// AppointmentRedisRepository keeps each appointment as a JSON document and
// indexes ids per owner in a sorted set scored by a global insert sequence.
type AppointmentRedisRepository struct {
	rdb    *redis.Client
	prefix string
	now    func() time.Time
}

func NewAppointmentRedisRepository(rdb *redis.Client, prefix string) *AppointmentRedisRepository {
	return &AppointmentRedisRepository{
		rdb:    rdb,
		prefix: prefix,
		now:    time.Now,
	}
}

func (r *AppointmentRedisRepository) docKey(id string) string {
	return r.prefix + "appointment:" + id
}

func (r *AppointmentRedisRepository) ownerKey(owner string) string {
	return r.prefix + "appointments:owner:" + owner
}

func (r *AppointmentRedisRepository) seqKey() string {
	return r.prefix + "appointments:seq"
}

func (r *AppointmentRedisRepository) Insert(
	ctx context.Context,
	ap *models.Appointment,
) error {

	now := r.now().UTC()
	ap.ID = uuid.NewString()
	ap.CreatedAt = now
	ap.UpdatedAt = now

	doc, err := json.Marshal(ap)
	if err != nil {
		return fmt.Errorf("encoding appointment: %w", err)
	}

	seq, err := r.rdb.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return err
	}

	_, err = r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, r.docKey(ap.ID), doc, 0)
		p.ZAdd(ctx, r.ownerKey(ap.Owner), &redis.Z{
			Score:  float64(seq),
			Member: ap.ID,
		})
		return nil
	})
	return err
}

func (r *AppointmentRedisRepository) FindByOwner(
	ctx context.Context,
	owner string,
) ([]models.Appointment, error) {

	ids, err := r.rdb.ZRange(ctx, r.ownerKey(owner), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	apps := make([]models.Appointment, 0, len(ids))
	if len(ids) == 0 {
		return apps, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(id)
	}

	docs, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for _, raw := range docs {
		// index entries can outlive a document removed by another writer
		s, ok := raw.(string)
		if !ok {
			continue
		}
		var ap models.Appointment
		if err := json.Unmarshal([]byte(s), &ap); err != nil {
			return nil, fmt.Errorf("decoding appointment: %w", err)
		}
		apps = append(apps, ap)
	}

	return apps, nil
}

func (r *AppointmentRedisRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {
	return r.get(ctx, r.rdb, id)
}

type redisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *AppointmentRedisRepository) get(
	ctx context.Context,
	g redisGetter,
	id string,
) (*models.Appointment, error) {

	b, err := g.Get(ctx, r.docKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	var ap models.Appointment
	if err := json.Unmarshal(b, &ap); err != nil {
		return nil, fmt.Errorf("decoding appointment: %w", err)
	}
	return &ap, nil
}

func (r *AppointmentRedisRepository) UpdateByID(
	ctx context.Context,
	id string,
	changes domain.Changes,
) (*models.Appointment, error) {

	if changes.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	key := r.docKey(id)
	var updated *models.Appointment

	err := r.watch(ctx, func(tx *redis.Tx) error {
		ap, err := r.get(ctx, tx, id)
		if err != nil {
			return err
		}

		changes.ApplyTo(ap)
		ap.UpdatedAt = r.now().UTC()

		doc, err := json.Marshal(ap)
		if err != nil {
			return fmt.Errorf("encoding appointment: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, doc, 0)
			return nil
		})
		if err == nil {
			updated = ap
		}
		return err
	}, key)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *AppointmentRedisRepository) DeleteByID(
	ctx context.Context,
	id string,
) (bool, error) {

	key := r.docKey(id)
	deleted := false

	err := r.watch(ctx, func(tx *redis.Tx) error {
		ap, err := r.get(ctx, tx, id)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Del(ctx, key)
			p.ZRem(ctx, r.ownerKey(ap.Owner), id)
			return nil
		})
		if err == nil {
			deleted = true
		}
		return err
	}, key)

	return deleted, err
}

func (r *AppointmentRedisRepository) watch(
	ctx context.Context,
	fn func(tx *redis.Tx) error,
	keys ...string,
) error {

	var err error
	for i := 0; i < redisWatchRetries; i++ {
		err = r.rdb.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*AppointmentRedisRepository)(nil)
