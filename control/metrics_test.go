// File: control/metrics_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/bipbuf/api"
	"github.com/momentics/bipbuf/arena"
	"github.com/momentics/bipbuf/bip"
	"github.com/momentics/bipbuf/control"
)

func TestRegistrySnapshots(t *testing.T) {
	reg := control.NewMetricsRegistry()

	q := bip.NewBlocking(make([]byte, 32))
	reg.RegisterQueue("q", q.Stats)

	p, err := arena.NewPool(64)
	require.NoError(t, err)
	defer p.Close()
	reg.RegisterPool("p", p.Stats)

	q.Put([]byte("data"))
	a, err := p.Get()
	require.NoError(t, err)
	p.Put(a)

	qs := reg.QueueSnapshot()
	require.Equal(t, int64(4), qs["q"].BytesIn)

	ps := reg.PoolSnapshot()
	require.Equal(t, int64(1), ps["p"].Allocated)
	require.Equal(t, int64(1), ps["p"].Recycled)
}

func TestRegistryReplaceProbe(t *testing.T) {
	reg := control.NewMetricsRegistry()
	reg.RegisterQueue("q", func() api.QueueStats { return api.QueueStats{Puts: 1} })
	reg.RegisterQueue("q", func() api.QueueStats { return api.QueueStats{Puts: 2} })
	require.Equal(t, int64(2), reg.QueueSnapshot()["q"].Puts)
}
