package encoder

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/dicol/column"
	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/internal/collision"
	"github.com/arloliu/dicol/internal/options"
	"github.com/arloliu/dicol/internal/pool"
)

// Encode dictionary-encodes raw using shardCount worker goroutines.
//
// Parameters:
//   - raw: the raw column; position is the row id. It is only read.
//   - shardCount: number of shards and workers, at least 1
//   - opts: logger and metrics options
//
// Returns:
//   - *Session: the frozen dictionary and encoded column
//   - error: errs.ErrInvalidShardCount when shardCount < 1,
//     errs.ErrColumnTooLarge when raw has more rows than a uint32 row id can address,
//     errs.ErrInvariantViolation when the merge produces inconsistent codes
func Encode(raw []string, shardCount int, opts ...Option) (*Session, error) {
	if shardCount < 1 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidShardCount, shardCount)
	}

	if uint64(len(raw)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d rows", errs.ErrColumnTooLarge, len(raw))
	}

	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	start := time.Now()

	codes := make(column.Encoded, len(raw))
	shards := partition(len(raw), shardCount)
	locals := make([]localDictionary, len(shards))

	cfg.logger.Debug("encoding column",
		zap.Int("rows", len(raw)),
		zap.Int("shards", shardCount),
		zap.Int("shard_rows", len(raw)/shardCount),
		zap.Int("last_shard_rows", shards[len(shards)-1].len()),
	)

	var g errgroup.Group
	for i, sh := range shards {
		g.Go(func() error {
			locals[i] = encodeShard(raw[sh.start:sh.end], codes[sh.start:sh.end])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dict, err := merge(shards, locals, codes)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	cfg.metrics.ObserveEncode(len(raw), dict.Len(), shardCount, elapsed)
	cfg.logger.Info("column encoded",
		zap.Int("rows", len(raw)),
		zap.Int("shards", shardCount),
		zap.Int("dictionary_keys", dict.Len()),
		zap.Duration("elapsed", elapsed),
	)

	return &Session{
		dict:       dict,
		codes:      codes,
		shardCount: shardCount,
		elapsed:    elapsed,
	}, nil
}

// merge folds the shard dictionaries into one global dictionary in shard order
// and rewrites every shard's region of codes from local to global codes.
func merge(shards []shard, locals []localDictionary, codes column.Encoded) (*column.Dictionary, error) {
	sizeHint := 0
	for _, local := range locals {
		sizeHint = max(sizeHint, len(local.keys))
	}

	builder := column.NewDictionaryBuilder(sizeHint)
	tracker := collision.NewTracker(sizeHint)

	for i, sh := range shards {
		if err := remapShard(builder, tracker, &locals[i], codes[sh.start:sh.end]); err != nil {
			return nil, fmt.Errorf("shard %d: %w", i, err)
		}
	}

	dict := builder.Freeze()
	if dict.Len() != tracker.Count() {
		return nil, fmt.Errorf("%w: dictionary has %d keys, merge observed %d",
			errs.ErrInvariantViolation, dict.Len(), tracker.Count())
	}

	return dict, nil
}

func remapShard(builder *column.DictionaryBuilder, tracker *collision.Tracker, local *localDictionary, region []uint32) error {
	remap, release := pool.GetUint32Slice(len(local.keys))
	defer release()

	for localCode, key := range local.keys {
		code, _ := builder.Add(key)
		if err := tracker.Observe(code, key); err != nil {
			return err
		}
		remap[localCode] = code
	}

	for i, localCode := range region {
		region[i] = remap[localCode]
	}

	local.keys, local.index = nil, nil

	return nil
}
