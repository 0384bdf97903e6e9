package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Granularity é a unidade de tempo usada para agrupar as vendas
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

var granularityAliases = map[string]Granularity{
	"day":    GranularityDay,
	"dia":    GranularityDay,
	"week":   GranularityWeek,
	"semana": GranularityWeek,
	"month":  GranularityMonth,
	"mes":    GranularityMonth,
	"year":   GranularityYear,
	"año":    GranularityYear,
	"ano":    GranularityYear,
}

// ParseGranularity normaliza o valor recebido. Valores desconhecidos são
// devolvidos como estão; o agregador trata-os como no-op.
func ParseGranularity(value string) Granularity {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if g, ok := granularityAliases[normalized]; ok {
		return g
	}
	return Granularity(normalized)
}

func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return true
	}
	return false
}

type Bucket struct {
	Key         string          `json:"key"`
	Label       string          `json:"label"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type SalesAggregate struct {
	Granularity Granularity     `json:"granularity"`
	RangeStart  time.Time       `json:"range_start"`
	RangeEnd    time.Time       `json:"range_end"`
	Buckets     []Bucket        `json:"buckets"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}

// RankKey identifica o campo da venda usado no ranking
type RankKey string

const (
	RankByCustomer RankKey = "customerId"
	RankByProduct  RankKey = "productId"
)

type RankedEntry struct {
	EntityID        string `json:"entity_id"`
	Name            string `json:"name,omitempty"`
	OccurrenceCount int    `json:"occurrence_count"`
}

type ReportFilters struct {
	Granularity Granularity
	StartDate   time.Time
	EndDate     time.Time
	SortBuckets bool
}

type TopFilters struct {
	CustomerLimit int
	ProductLimit  int
	ByUnits       bool
}

type TopRanking struct {
	TopCustomers []RankedEntry `json:"top_customers"`
	TopProducts  []RankedEntry `json:"top_products"`
}

// ReportSnapshot é o relatório diário persistido pelo agendador
type ReportSnapshot struct {
	ID           int64          `json:"id"`
	Date         time.Time      `json:"date"`
	Aggregate    SalesAggregate `json:"aggregate"`
	TopCustomers []RankedEntry  `json:"top_customers"`
	TopProducts  []RankedEntry  `json:"top_products"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
