package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"playbox/internal/shared/constants"
	"playbox/internal/slots"

	"github.com/redis/go-redis/v9"
)

// selectionDraft is the persisted form of one user's in-progress slot pick.
// A draft is scoped to its tuple; any tuple change starts a fresh draft.
type selectionDraft struct {
	Tuple slots.Tuple `json:"tuple"`
	Hours []int       `json:"hours"`
}

// SelectionStore keeps draft selections in Redis so a user can build up a
// multi-hour pick across requests. Drafts expire on their own; only a
// confirmed booking outlives the TTL.
type SelectionStore interface {
	Get(ctx context.Context, userID string, tuple slots.Tuple) (slots.Selection, error)
	Toggle(ctx context.Context, userID string, tuple slots.Tuple, hour int) (slots.Selection, error)
	Clear(ctx context.Context, userID string) error
}

type selectionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSelectionStore(client *redis.Client, ttl time.Duration) SelectionStore {
	return &selectionStore{client: client, ttl: ttl}
}

// Get returns the current draft for the tuple. A draft stored for a
// different tuple is ignored rather than surfaced: hours picked for another
// court or date must never leak into this grid.
func (s *selectionStore) Get(ctx context.Context, userID string, tuple slots.Tuple) (slots.Selection, error) {
	draft, err := s.load(ctx, userID)
	if err != nil {
		return slots.Selection{}, err
	}
	if draft == nil || draft.Tuple != tuple {
		return slots.Selection{}, nil
	}
	return slots.NewSelection(draft.Hours)
}

// Toggle flips one hour in the draft under an optimistic WATCH transaction,
// retrying when a concurrent request from the same user moves the draft
// first. A tuple switch discards the old draft before applying the toggle.
func (s *selectionStore) Toggle(ctx context.Context, userID string, tuple slots.Tuple, hour int) (slots.Selection, error) {
	key := constants.BuildSelectionDraftKey(userID)

	var result slots.Selection

	txf := func(tx *redis.Tx) error {
		draft := &selectionDraft{Tuple: tuple}

		raw, err := tx.Get(ctx, key).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil {
			var stored selectionDraft
			if jsonErr := json.Unmarshal([]byte(raw), &stored); jsonErr == nil && stored.Tuple == tuple {
				draft = &stored
			}
		}

		sel, err := slots.NewSelection(draft.Hours)
		if err != nil {
			// A corrupt draft is dropped, not repaired
			sel = slots.Selection{}
		}

		if err := sel.Toggle(hour); err != nil {
			return err
		}

		draft.Hours = sel.Hours()
		payload, err := json.Marshal(draft)
		if err != nil {
			return fmt.Errorf("failed to marshal selection draft: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(draft.Hours) == 0 {
				pipe.Del(ctx, key)
			} else {
				pipe.Set(ctx, key, payload, s.ttl)
			}
			return nil
		})
		if err != nil {
			return err
		}

		result = sel
		return nil
	}

	for attempt := 0; attempt < 3; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return slots.Selection{}, err
	}

	return slots.Selection{}, fmt.Errorf("selection update contended, retry the request")
}

func (s *selectionStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, constants.BuildSelectionDraftKey(userID)).Err()
}

func (s *selectionStore) load(ctx context.Context, userID string) (*selectionDraft, error) {
	raw, err := s.client.Get(ctx, constants.BuildSelectionDraftKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load selection draft: %w", err)
	}

	var draft selectionDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, nil
	}
	return &draft, nil
}
