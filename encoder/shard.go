package encoder

// shard is the half-open row range [start, end) owned by one worker.
type shard struct {
	start int
	end   int
}

func (s shard) len() int {
	return s.end - s.start
}

// partition splits rows into count contiguous shards of rows/count rows each;
// the last shard absorbs the remainder. Leading shards are empty when
// rows < count.
func partition(rows, count int) []shard {
	shards := make([]shard, count)
	size := rows / count

	start := 0
	for i := range shards {
		end := start + size
		if i == count-1 {
			end = rows
		}
		shards[i] = shard{start: start, end: end}
		start = end
	}

	return shards
}

// localDictionary is the private dictionary of one shard.
type localDictionary struct {
	keys  []string          // local code -> key, first-seen order
	index map[string]uint32 // key -> local code
}

// encodeShard assigns local codes to rows and writes them to dst, which must
// have the same length as rows.
func encodeShard(rows []string, dst []uint32) localDictionary {
	local := localDictionary{index: make(map[string]uint32)}

	for i, key := range rows {
		code, ok := local.index[key]
		if !ok {
			code = uint32(len(local.keys)) //nolint: gosec
			local.keys = append(local.keys, key)
			local.index[key] = code
		}
		dst[i] = code
	}

	return local
}
