package store

import (
	"maps"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"
)

// Reducer — чистая функция перехода состояний.
// DiscardStale: ответы с токеном старше текущего RequestToken отбрасываются;
// иначе применяется любой пришедший ответ (последний победил).
type Reducer struct {
	DiscardStale bool
}

// Reduce возвращает новое состояние и признак того, что оно изменилось.
func (r Reducer) Reduce(s State, a Action) (State, bool) {
	switch a := a.(type) {
	case PageRequested:
		if !s.Pagination.CanLoad() {
			return s, false
		}
		s.Pagination.CurrentPage = s.Pagination.NextPage()
		s.Pagination.IsLoadingMore = true
		return s, true

	case PageAppended:
		if !s.Pagination.IsLoadingMore || a.Page != s.Pagination.CurrentPage {
			return s, false
		}
		// полное выражение среза, чтобы не писать в массив опубликованного состояния
		s.Assets = append(s.Assets[:len(s.Assets):len(s.Assets)], a.Assets...)
		s.Pagination.LoadedPages = a.Page
		s.Pagination.HasMore = len(a.Assets) > 0
		s.Pagination.IsLoadingMore = false
		return s, true

	case PageFailed:
		if !s.Pagination.IsLoadingMore || a.Page != s.Pagination.CurrentPage {
			return s, false
		}
		s.Pagination.IsLoadingMore = false
		return s, true

	case SelectionChanged:
		if a.AssetID == "" || a.AssetID == s.SelectedAssetID {
			return s, false
		}
		s.SelectedAssetID = a.AssetID
		return startRequest(s), true

	case RangeChanged:
		if !a.Range.Valid() || a.Range == s.SelectedRange {
			return s, false
		}
		s.SelectedRange = a.Range
		return startRequest(s), true

	case RefreshRequested:
		return startRequest(s), true

	case SeriesLoaded:
		if r.stale(s, a.Token) {
			return s, false
		}
		series := maps.Clone(s.SeriesByAsset)
		if series == nil {
			series = map[string][]domain.PricePoint{}
		}
		series[a.AssetID] = a.Series
		s.SeriesByAsset = series
		return s, true

	case DetailLoaded:
		if r.stale(s, a.Token) {
			return s, false
		}
		d := a.Detail
		s.Detail = &d
		return s, true

	case LoadFinished:
		if r.stale(s, a.Token) || !s.Loading {
			return s, false
		}
		s.Loading = false
		return s, true
	}
	return s, false
}

func (r Reducer) stale(s State, token uint64) bool {
	return r.DiscardStale && token != s.RequestToken
}

// startRequest — новый запрос ряда и статистики: следующий токен, экран в загрузке
func startRequest(s State) State {
	s.RequestToken++
	s.Loading = true
	return s
}
