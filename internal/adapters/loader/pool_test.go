package loader_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/okian/fiprank/internal/adapters/loader"
	"github.com/okian/fiprank/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

var errBroken = errors.New("broken snapshot")

type mockSource struct {
	mu       sync.Mutex
	records  map[string][]model.Record
	errors   map[string]error
	delay    time.Duration
	inFlight int32
	peak     int32
}

func newMockSource() *mockSource {
	return &mockSource{
		records: make(map[string][]model.Record),
		errors:  make(map[string]error),
	}
}

func (m *mockSource) Load(ctx context.Context, path string) ([]model.Record, error) {
	n := atomic.AddInt32(&m.inFlight, 1)
	defer atomic.AddInt32(&m.inFlight, -1)
	for {
		peak := atomic.LoadInt32(&m.peak)
		if n <= peak || atomic.CompareAndSwapInt32(&m.peak, peak, n) {
			break
		}
	}
	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.errors[path]; ok {
		return nil, err
	}
	return m.records[path], nil
}

func TestPool_LoadAll(t *testing.T) {
	convey.Convey("Given a pool over a snapshot source", t, func() {
		ctx := context.Background()
		src := newMockSource()
		src.records["a.csv"] = []model.Record{{Name: "A", Points: 1, Position: 1}}
		src.records["b.csv"] = []model.Record{{Name: "B", Points: 2, Position: 1}}
		src.records["c.csv"] = []model.Record{{Name: "C", Points: 3, Position: 1}}

		convey.Convey("When loading several paths", func() {
			pool := loader.NewPool(src, loader.WithWorkers(2))
			results, err := pool.LoadAll(ctx, []string{"c.csv", "a.csv", "b.csv"})

			convey.Convey("Then results keep the order of the paths", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(results, convey.ShouldHaveLength, 3)
				convey.So(results[0].Path, convey.ShouldEqual, "c.csv")
				convey.So(results[0].Records[0].Name, convey.ShouldEqual, "C")
				convey.So(results[1].Records[0].Name, convey.ShouldEqual, "A")
				convey.So(results[2].Records[0].Name, convey.ShouldEqual, "B")
			})
		})

		convey.Convey("When one path fails", func() {
			src.errors["b.csv"] = errBroken
			pool := loader.NewPool(src)
			results, err := pool.LoadAll(ctx, []string{"a.csv", "b.csv", "c.csv"})

			convey.Convey("Then the failure is reported and the rest still load", func() {
				convey.So(errors.Is(err, errBroken), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "b.csv")
				convey.So(results[0].Err, convey.ShouldBeNil)
				convey.So(results[2].Records, convey.ShouldHaveLength, 1)
			})
		})

		convey.Convey("When no paths are given", func() {
			results, err := loader.NewPool(src).LoadAll(ctx, nil)

			convey.Convey("Then nothing is loaded", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(results, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When the context is already canceled", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := loader.NewPool(src, loader.WithWorkers(1)).LoadAll(canceled, []string{"a.csv", "b.csv"})

			convey.Convey("Then the context error is returned", func() {
				convey.So(errors.Is(err, context.Canceled), convey.ShouldBeTrue)
			})
		})
	})
}

func TestPool_Workers(t *testing.T) {
	convey.Convey("Given a pool limited to two workers", t, func() {
		src := newMockSource()
		src.delay = 20 * time.Millisecond
		paths := []string{"1", "2", "3", "4", "5", "6"}
		pool := loader.NewPool(src, loader.WithWorkers(2))

		_, err := pool.LoadAll(context.Background(), paths)

		convey.Convey("Then at most two loads run at once", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(pool.Workers(), convey.ShouldEqual, 2)
			convey.So(atomic.LoadInt32(&src.peak), convey.ShouldBeLessThanOrEqualTo, 2)
		})

		convey.Convey("Then non-positive worker counts are ignored", func() {
			convey.So(loader.NewPool(src, loader.WithWorkers(0)).Workers(), convey.ShouldBeGreaterThan, 0)
		})
	})
}
