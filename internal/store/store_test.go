package store

import (
	"sync"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"
)

func TestStore_DispatchBatchNotifiesOnce(t *testing.T) {
	st := New(NewState("bitcoin", domain.Range30D), Reducer{DiscardStale: true})
	updates, cancel := st.Subscribe()
	defer cancel()

	tr := st.Dispatch(RefreshRequested{})
	token := tr.After.RequestToken
	st.Dispatch(
		SeriesLoaded{Token: token, AssetID: "bitcoin", Series: points(1, 2)},
		DetailLoaded{Token: token, Detail: domain.AssetDetail{ID: "bitcoin"}},
		LoadFinished{Token: token},
	)

	// в канале только последнее состояние
	select {
	case got := <-updates:
		if got.Loading || got.Detail == nil || len(got.Series()) != 2 {
			t.Fatalf("unexpected state: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no update received")
	}
	select {
	case extra := <-updates:
		t.Fatalf("unexpected extra update: %+v", extra)
	default:
	}
}

func TestStore_NoNotifyWithoutChange(t *testing.T) {
	st := New(NewState("bitcoin", domain.Range30D), Reducer{})
	updates, cancel := st.Subscribe()
	defer cancel()

	tr := st.Dispatch(SelectionChanged{AssetID: "bitcoin"})
	if tr.Changed {
		t.Fatal("selecting the same asset must not change state")
	}
	select {
	case <-updates:
		t.Fatal("no update expected")
	default:
	}
}

func TestStore_CancelClosesChannel(t *testing.T) {
	st := New(NewState("bitcoin", domain.Range30D), Reducer{})
	updates, cancel := st.Subscribe()
	cancel()
	cancel()

	if _, ok := <-updates; ok {
		t.Fatal("channel must be closed after cancel")
	}
	// после отписки Dispatch не должен паниковать
	st.Dispatch(RefreshRequested{})
}

// Параллельные триггеры: ровно один PageRequested проходит
func TestStore_ConcurrentPageRequests(t *testing.T) {
	st := New(NewState("bitcoin", domain.Range30D), Reducer{})

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if st.Dispatch(PageRequested{}).Changed {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != 1 {
		t.Fatalf("expected exactly one accepted request, got %d", accepted)
	}
}
