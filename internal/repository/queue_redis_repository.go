package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-medical-frontdesk/internal/domain/entity"
	domainRepo "go-medical-frontdesk/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis keys for the front-desk queue
	RedisQueueItemsKey = "frontdesk:queue:items"
	RedisQueueOrderKey = "frontdesk:queue:order"
	RedisQueueSeqKey   = "frontdesk:queue:seq"
)

// replaceQueueItemScript overwrites an item only when it is already stored.
// Returns 1 on success, 0 when the id is unknown.
var replaceQueueItemScript = redis.NewScript(`
	if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 0 then
		return 0
	end
	redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
	return 1
`)

// removeQueueItemScript drops an item from the hash and the order list.
// Returns the removed payload, or nil when the id is unknown.
var removeQueueItemScript = redis.NewScript(`
	local item = redis.call('HGET', KEYS[1], ARGV[1])
	if not item then
		return false
	end
	redis.call('HDEL', KEYS[1], ARGV[1])
	redis.call('LREM', KEYS[2], 0, ARGV[1])
	return item
`)

// moveQueueItemScript swaps an id with its neighbour ARGV[2] positions away.
// Returns -1 when the id is unknown, 0 when the target is out of range, 1 on swap.
var moveQueueItemScript = redis.NewScript(`
	local ids = redis.call('LRANGE', KEYS[1], 0, -1)
	local idx = nil
	for i, v in ipairs(ids) do
		if v == ARGV[1] then
			idx = i
			break
		end
	end
	if not idx then
		return -1
	end
	local target = idx + tonumber(ARGV[2])
	if target < 1 or target > #ids then
		return 0
	end
	redis.call('LSET', KEYS[1], idx - 1, ids[target])
	redis.call('LSET', KEYS[1], target - 1, ids[idx])
	return 1
`)

// QueueRedisRepository stores queue items as JSON in a hash with a list holding display order.
type QueueRedisRepository struct {
	client *redis.Client
}

func NewQueueRedisRepository(client *redis.Client) *QueueRedisRepository {
	return &QueueRedisRepository{client: client}
}

// Seed loads fixture items when the queue is empty. Existing data is left alone.
func (r *QueueRedisRepository) Seed(ctx context.Context, items ...entity.QueueItem) error {
	size, err := r.client.HLen(ctx, RedisQueueItemsKey).Result()
	if err != nil {
		return err
	}
	if size > 0 {
		return nil
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range items {
			payload, err := json.Marshal(item)
			if err != nil {
				return err
			}
			pipe.HSet(ctx, RedisQueueItemsKey, item.ID, payload)
			pipe.RPush(ctx, RedisQueueOrderKey, item.ID)
		}
		pipe.Set(ctx, RedisQueueSeqKey, len(items), 0)
		return nil
	})
	return err
}

func (r *QueueRedisRepository) Create(ctx context.Context, item *entity.QueueItem) error {
	seq, err := r.client.Incr(ctx, RedisQueueSeqKey).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate queue id: %w", err)
	}
	item.ID = FormatQueueID(int(seq))

	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, RedisQueueItemsKey, item.ID, payload)
		pipe.RPush(ctx, RedisQueueOrderKey, item.ID)
		return nil
	})
	return err
}

func (r *QueueRedisRepository) FindAll(ctx context.Context) ([]entity.QueueItem, error) {
	ids, err := r.client.LRange(ctx, RedisQueueOrderKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []entity.QueueItem{}, nil
	}

	values, err := r.client.HMGet(ctx, RedisQueueItemsKey, ids...).Result()
	if err != nil {
		return nil, err
	}

	items := make([]entity.QueueItem, 0, len(values))
	for _, value := range values {
		payload, ok := value.(string)
		if !ok {
			continue
		}
		var item entity.QueueItem
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *QueueRedisRepository) FindByID(ctx context.Context, id string) (*entity.QueueItem, error) {
	payload, err := r.client.HGet(ctx, RedisQueueItemsKey, id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var item entity.QueueItem
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *QueueRedisRepository) Update(ctx context.Context, item *entity.QueueItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}

	replaced, err := replaceQueueItemScript.Run(ctx, r.client, []string{RedisQueueItemsKey}, item.ID, payload).Int()
	if err != nil {
		return err
	}
	if replaced == 0 {
		return domainRepo.ErrRecordNotFound
	}
	return nil
}

func (r *QueueRedisRepository) Delete(ctx context.Context, id string) (*entity.QueueItem, error) {
	payload, err := removeQueueItemScript.Run(ctx, r.client, []string{RedisQueueItemsKey, RedisQueueOrderKey}, id).Text()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainRepo.ErrRecordNotFound
		}
		return nil, err
	}

	var item entity.QueueItem
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *QueueRedisRepository) Move(ctx context.Context, id string, offset int) error {
	result, err := moveQueueItemScript.Run(ctx, r.client, []string{RedisQueueOrderKey}, id, offset).Int()
	if err != nil {
		return err
	}
	if result < 0 {
		return domainRepo.ErrRecordNotFound
	}
	return nil
}

var _ domainRepo.QueueRepository = (*QueueRedisRepository)(nil)
