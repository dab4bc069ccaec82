package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUint32Slice(t *testing.T) {
	s, release := GetUint32Slice(10)
	require.Len(t, s, 10)
	for i := range s {
		s[i] = uint32(i)
	}
	release()

	s2, release2 := GetUint32Slice(4)
	defer release2()
	require.Len(t, s2, 4)

	s3, release3 := GetUint32Slice(0)
	defer release3()
	require.Empty(t, s3)
}

func TestGetUint32Slice_GrowsBeyondPooledCapacity(t *testing.T) {
	_, release := GetUint32Slice(2)
	release()

	s, release := GetUint32Slice(1000)
	defer release()
	require.Len(t, s, 1000)
}
