package store

import "github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"

// ActionType — имя действия (для логов и отладки)
type ActionType string

const (
	TypePageRequested    ActionType = "PAGE_REQUESTED"
	TypePageAppended     ActionType = "PAGE_APPENDED"
	TypePageFailed       ActionType = "PAGE_FAILED"
	TypeSelectionChanged ActionType = "SELECTION_CHANGED"
	TypeRangeChanged     ActionType = "RANGE_CHANGED"
	TypeRefreshRequested ActionType = "REFRESH_REQUESTED"
	TypeSeriesLoaded     ActionType = "SERIES_LOADED"
	TypeDetailLoaded     ActionType = "DETAIL_LOADED"
	TypeLoadFinished     ActionType = "LOAD_FINISHED"
)

// Action — событие, которое переводит State в новое состояние
type Action interface {
	Type() ActionType
}

// PageRequested — сработал триггер подгрузки; номер страницы выбирает редьюсер
type PageRequested struct{}

// PageAppended — страница списка монет получена
type PageAppended struct {
	Page   int
	Assets []domain.AssetSummary
}

// PageFailed — запрос страницы упал, hasMore не трогаем
type PageFailed struct {
	Page int
}

type SelectionChanged struct {
	AssetID string
}

type RangeChanged struct {
	Range domain.Range
}

// RefreshRequested — повторная загрузка текущего выбора (первый запуск)
type RefreshRequested struct{}

type SeriesLoaded struct {
	Token   uint64
	AssetID string
	Series  []domain.PricePoint
}

type DetailLoaded struct {
	Token  uint64
	Detail domain.AssetDetail
}

// LoadFinished — оба запроса выбора завершились (успешно или нет)
type LoadFinished struct {
	Token uint64
}

func (PageRequested) Type() ActionType    { return TypePageRequested }
func (PageAppended) Type() ActionType     { return TypePageAppended }
func (PageFailed) Type() ActionType       { return TypePageFailed }
func (SelectionChanged) Type() ActionType { return TypeSelectionChanged }
func (RangeChanged) Type() ActionType     { return TypeRangeChanged }
func (RefreshRequested) Type() ActionType { return TypeRefreshRequested }
func (SeriesLoaded) Type() ActionType     { return TypeSeriesLoaded }
func (DetailLoaded) Type() ActionType     { return TypeDetailLoaded }
func (LoadFinished) Type() ActionType     { return TypeLoadFinished }
