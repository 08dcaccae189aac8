package codec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-secs-item/secs2"
)

func TestMetrics(t *testing.T) {
	require := require.New(t)

	metrics := NewMetrics()
	dec := NewDecoder(WithMetrics(metrics))

	data := Encode(secs2.L(secs2.U1(1), secs2.U1(2), secs2.A("a")))
	_, err := dec.DecodeItem(data)
	require.NoError(err)

	_, err = dec.DecodeItem([]byte{0x41, 0x05})
	require.ErrorIs(err, ErrTruncated)

	_, err = dec.DecodeItem([]byte{0xA9, 0x01, 0x00})
	require.ErrorIs(err, secs2.ErrPayloadWidth)

	snap := metrics.Snapshot()
	require.Equal(int64(1), snap.Items[secs2.FormatList])
	require.Equal(int64(2), snap.Items[secs2.FormatU1])
	require.Equal(int64(1), snap.Items[secs2.FormatASCII])
	require.Equal(int64(0), snap.Items[secs2.FormatF8])
	require.Equal(map[string]int64{"truncated": 1, "payload_width": 1}, snap.Errors)

	metrics.Reset()
	snap = metrics.Snapshot()
	require.Zero(snap.Items[secs2.FormatU1])
	require.Zero(snap.Errors["truncated"])
}

func TestMetrics_Concurrent(t *testing.T) {
	require := require.New(t)

	metrics := NewMetrics()
	dec := NewDecoder(WithMetrics(metrics))
	data := Encode(secs2.U4(1, 2, 3))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_, _ = dec.DecodeItem(data)
			}
		}()
	}
	wg.Wait()

	require.Equal(int64(800), metrics.Snapshot().Items[secs2.FormatU4])
}
