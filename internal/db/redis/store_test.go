package redis

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"go.uber.org/mock/gomock"

	"github.com/kailas-cloud/neighborly/internal/db"
)

func newMockStore(t *testing.T) (*Store, *mock.Client) {
	t.Helper()
	c := mock.NewClient(gomock.NewController(t))
	return NewStoreForTest(c), c
}

// --- client.go ---

func TestPing(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().Do(gomock.Any(), mock.Match("PING")).Return(mock.Result(mock.RedisString("PONG")))

	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPing_Error(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().Do(gomock.Any(), mock.Match("PING")).Return(mock.ErrorResult(context.DeadlineExceeded))

	err := s.Ping(context.Background())
	if !isDBError(err) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped db.Error, got %v", err)
	}
}

func TestWaitForReady_EventuallyReady(t *testing.T) {
	s, c := newMockStore(t)
	calls := 0
	c.EXPECT().Do(gomock.Any(), mock.Match("PING")).
		DoAndReturn(func(_ context.Context, _ rueidis.Completed) rueidis.RedisResult {
			calls++
			if calls < 3 {
				return mock.ErrorResult(errors.New("loading"))
			}
			return mock.Result(mock.RedisString("PONG"))
		}).Times(3)

	if err := s.WaitForReady(context.Background(), 5*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWaitForReady_Timeout(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().Do(gomock.Any(), mock.Match("PING")).
		Return(mock.ErrorResult(errors.New("refused"))).AnyTimes()

	err := s.WaitForReady(context.Background(), 250*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestNewStore_RequiresAddrs(t *testing.T) {
	if _, err := NewStore(Config{}); err == nil {
		t.Fatal("expected error without addrs")
	}
}

// --- hash.go ---

func TestHSet_SortedFields(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().
		Do(gomock.Any(), mock.Match("HSET", "neighborly:provider:1", "name", "Sarah", "platform", "rover", "rating", "4.9")).
		Return(mock.Result(mock.RedisInt64(3)))

	err := s.HSet(context.Background(), "neighborly:provider:1", map[string]string{
		"rating": "4.9", "name": "Sarah", "platform": "rover",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHSet_Error(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool { return cmd[0] == "HSET" })).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	if err := s.HSet(context.Background(), "k", map[string]string{"f": "v"}); !isDBError(err) {
		t.Fatalf("expected db.Error, got %v", err)
	}
}

func TestHSetMulti(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().
		DoMulti(gomock.Any(), mock.Match("HSET", "k1", "f", "a"), mock.Match("HSET", "k2", "f", "b")).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisInt64(1)),
			mock.Result(mock.RedisInt64(1)),
		})

	err := s.HSetMulti(context.Background(), []db.HashSetItem{
		{Key: "k1", Fields: map[string]string{"f": "a"}},
		{Key: "k2", Fields: map[string]string{"f": "b"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHSetMulti_PartialFailure(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().
		DoMulti(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisInt64(1)),
			mock.ErrorResult(errors.New("OOM")),
		})

	err := s.HSetMulti(context.Background(), []db.HashSetItem{
		{Key: "k1", Fields: map[string]string{"f": "a"}},
		{Key: "k2", Fields: map[string]string{"f": "b"}},
	})
	if !isDBError(err) {
		t.Fatalf("expected db.Error, got %v", err)
	}
}

func TestHSetMulti_Empty(t *testing.T) {
	s := NewStoreForTest(nil)
	if err := s.HSetMulti(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHGetAll(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().
		Do(gomock.Any(), mock.Match("HGETALL", "k")).
		Return(mock.Result(mock.RedisMap(map[string]rueidis.RedisMessage{
			"name":     mock.RedisString("Sarah"),
			"platform": mock.RedisString("rover"),
		})))

	m, err := s.HGetAll(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["name"] != "Sarah" || m["platform"] != "rover" {
		t.Errorf("unexpected map: %v", m)
	}
}

func TestHGetAllMulti(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().
		DoMulti(gomock.Any(), mock.Match("HGETALL", "k1"), mock.Match("HGETALL", "k2")).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisMap(map[string]rueidis.RedisMessage{"f": mock.RedisString("a")})),
			mock.Result(mock.RedisMap(map[string]rueidis.RedisMessage{"f": mock.RedisString("b")})),
		})

	got, err := s.HGetAllMulti(context.Background(), []string{"k1", "k2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0]["f"] != "a" || got[1]["f"] != "b" {
		t.Errorf("unexpected results: %v", got)
	}
}

func TestHGetAllMulti_Error(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().
		DoMulti(gomock.Any(), gomock.Any()).
		Return([]rueidis.RedisResult{mock.ErrorResult(context.Canceled)})

	if _, err := s.HGetAllMulti(context.Background(), []string{"k1"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHGetAllMulti_Empty(t *testing.T) {
	got, err := NewStoreForTest(nil).HGetAllMulti(context.Background(), nil)
	if err != nil || got != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", got, err)
	}
}

func TestDel(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().Do(gomock.Any(), mock.Match("DEL", "k")).Return(mock.Result(mock.RedisInt64(1)))

	if err := s.Del(context.Background(), "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExists(t *testing.T) {
	for _, n := range []int64{0, 1} {
		s, c := newMockStore(t)
		c.EXPECT().Do(gomock.Any(), mock.Match("EXISTS", "k")).Return(mock.Result(mock.RedisInt64(n)))

		got, err := s.Exists(context.Background(), "k")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != (n == 1) {
			t.Errorf("Exists with reply %d: got %v", n, got)
		}
	}
}

func TestScan_Pages(t *testing.T) {
	s, c := newMockStore(t)
	page := 0
	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool { return cmd[0] == "SCAN" })).
		DoAndReturn(func(_ context.Context, _ rueidis.Completed) rueidis.RedisResult {
			page++
			if page == 1 {
				return mock.Result(mock.RedisArray(
					mock.RedisInt64(17),
					mock.RedisArray(mock.RedisString("neighborly:provider:1")),
				))
			}
			return mock.Result(mock.RedisArray(
				mock.RedisInt64(0),
				mock.RedisArray(mock.RedisString("neighborly:provider:2"), mock.RedisString("neighborly:provider:3")),
			))
		}).Times(2)

	keys, err := s.Scan(context.Background(), "neighborly:provider:*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"neighborly:provider:1", "neighborly:provider:2", "neighborly:provider:3"}
	if !slices.Equal(keys, want) {
		t.Errorf("keys: got %v, want %v", keys, want)
	}
}

func TestScan_Error(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().Do(gomock.Any(), gomock.Any()).Return(mock.ErrorResult(errors.New("NOPERM")))

	if _, err := s.Scan(context.Background(), "*"); !isDBError(err) {
		t.Fatalf("expected db.Error, got %v", err)
	}
}

// --- kv.go ---

func TestGet(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().Do(gomock.Any(), mock.Match("GET", "k")).Return(mock.Result(mock.RedisBlobString("value")))

	data, err := s.Get(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "value" {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestGet_NotFound(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().Do(gomock.Any(), mock.Match("GET", "k")).Return(mock.Result(mock.RedisNil()))

	if _, err := s.Get(context.Background(), "k"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestGet_NetworkError(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().Do(gomock.Any(), mock.Match("GET", "k")).Return(mock.ErrorResult(context.DeadlineExceeded))

	_, err := s.Get(context.Background(), "k")
	if errors.Is(err, db.ErrKeyNotFound) || !isDBError(err) {
		t.Errorf("expected db.Error other than not found, got %v", err)
	}
}

func TestSet(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().Do(gomock.Any(), mock.Match("SET", "k", "v")).Return(mock.Result(mock.RedisString("OK")))

	if err := s.Set(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetWithTTL(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().Do(gomock.Any(), mock.Match("SET", "k", "v", "EX", "60")).Return(mock.Result(mock.RedisString("OK")))

	if err := s.SetWithTTL(context.Background(), "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIncrBy(t *testing.T) {
	s, c := newMockStore(t)
	c.EXPECT().Do(gomock.Any(), mock.Match("INCRBY", "counter", "5")).Return(mock.Result(mock.RedisInt64(5)))

	if err := s.IncrBy(context.Background(), "counter", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExpire(t *testing.T) {
	tests := []struct {
		nx   bool
		want []string
	}{
		{false, []string{"EXPIRE", "k", "300"}},
		{true, []string{"EXPIRE", "k", "300", "NX"}},
	}
	for _, tt := range tests {
		s, c := newMockStore(t)
		c.EXPECT().Do(gomock.Any(), mock.Match(tt.want...)).Return(mock.Result(mock.RedisInt64(1)))

		if err := s.Expire(context.Background(), "k", 5*time.Minute, tt.nx); err != nil {
			t.Fatalf("nx=%v: unexpected error: %v", tt.nx, err)
		}
	}
}

// --- helpers ---

func isDBError(err error) bool {
	var dbErr *db.Error
	return errors.As(err, &dbErr)
}
