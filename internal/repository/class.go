package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/reducer"
)

var ErrClassNotFound = errors.New("class not found")

type ClassRepository interface {
	Save(ctx context.Context, outcome entity.Outcome, classes []reducer.EncodedClass) error
	GetByKey(ctx context.Context, outcome entity.Outcome, key int) (*reducer.EncodedClass, error)
	Count(ctx context.Context, outcome entity.Outcome) (int64, error)
	DeleteByOutcome(ctx context.Context, outcome entity.Outcome) error
}

type dbClass struct {
	client *redis.Client
}

func NewClassRepository(client *redis.Client) ClassRepository {
	return &dbClass{
		client: client,
	}
}

func classesKey(outcome entity.Outcome) string {
	return "classes:" + outcome.String()
}

// Save replaces every class stored for the outcome in a single transaction.
func (that *dbClass) Save(ctx context.Context, outcome entity.Outcome, classes []reducer.EncodedClass) error {
	fields := make(map[string]any, len(classes))
	for _, class := range classes {
		classJSON, err := json.Marshal(class)
		if err != nil {
			return fmt.Errorf("could not marshal class: %w", err)
		}

		fields[strconv.Itoa(class.Key)] = classJSON
	}

	key := classesKey(outcome)
	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(fields) > 0 {
			pipe.HSet(ctx, key, fields)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save classes: %w", err)
	}

	return nil
}

func (that *dbClass) GetByKey(ctx context.Context, outcome entity.Outcome, key int) (*reducer.EncodedClass, error) {
	response, err := that.client.HGet(ctx, classesKey(outcome), strconv.Itoa(key)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrClassNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get class by key: %w", err)
	}

	var class reducer.EncodedClass
	if err = json.Unmarshal([]byte(response), &class); err != nil {
		return nil, fmt.Errorf("failed to unmarshal class: %w", err)
	}

	class.Key = key

	return &class, nil
}

func (that *dbClass) Count(ctx context.Context, outcome entity.Outcome) (int64, error) {
	count, err := that.client.HLen(ctx, classesKey(outcome)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count classes: %w", err)
	}

	return count, nil
}

func (that *dbClass) DeleteByOutcome(ctx context.Context, outcome entity.Outcome) error {
	if err := that.client.Del(ctx, classesKey(outcome)).Err(); err != nil {
		return fmt.Errorf("failed to delete classes: %w", err)
	}

	return nil
}
