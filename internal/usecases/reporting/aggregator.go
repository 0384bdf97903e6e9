package reporting

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/internal/domain"
)

type aggregateOptions struct {
	sortBuckets bool
	location    *time.Location
}

type AggregateOption func(*aggregateOptions)

// WithSortedBuckets ordena os buckets cronologicamente em vez da ordem de
// primeira ocorrência
func WithSortedBuckets() AggregateOption {
	return func(o *aggregateOptions) {
		o.sortBuckets = true
	}
}

// WithLocation define o fuso em que dia, semana, mês e ano de cada venda são
// calculados. Sem esta opção o cálculo é feito em UTC.
func WithLocation(loc *time.Location) AggregateOption {
	return func(o *aggregateOptions) {
		if loc != nil {
			o.location = loc
		}
	}
}

// Aggregate agrupa as vendas do intervalo fechado [start, end] pela granularidade.
// Os buckets saem na ordem em que a chave aparece pela primeira vez na lista.
// Granularidade desconhecida não agrega nada e não é tratada como erro.
func Aggregate(sales []domain.Sale, granularity domain.Granularity, start, end time.Time, opts ...AggregateOption) domain.SalesAggregate {
	options := aggregateOptions{location: time.UTC}
	for _, opt := range opts {
		opt(&options)
	}

	result := domain.SalesAggregate{
		Granularity: granularity,
		RangeStart:  start,
		RangeEnd:    end,
		Buckets:     []domain.Bucket{},
		GrandTotal:  decimal.Zero,
	}

	if !granularity.IsValid() {
		logrus.WithField("report_granularity", string(granularity)).Warn("Granularidade desconhecida, nenhuma agregação realizada")
		return result
	}

	index := make(map[string]int)
	for _, sale := range sales {
		if !sale.InRange(start, end) {
			continue
		}

		// Mesmo instante com offsets diferentes cai sempre no mesmo bucket
		date := sale.Date.In(options.location)
		key := bucketKey(date, granularity)
		pos, ok := index[key]
		if !ok {
			pos = len(result.Buckets)
			index[key] = pos
			result.Buckets = append(result.Buckets, domain.Bucket{
				Key:         key,
				Label:       bucketLabel(date, granularity),
				TotalAmount: decimal.Zero,
			})
		}
		result.Buckets[pos].TotalAmount = result.Buckets[pos].TotalAmount.Add(sale.Amount)
	}

	if options.sortBuckets {
		// As chaves têm largura fixa, então a ordem lexicográfica é a cronológica
		slices.SortStableFunc(result.Buckets, func(a, b domain.Bucket) int {
			return strings.Compare(a.Key, b.Key)
		})
	}

	for _, bucket := range result.Buckets {
		result.GrandTotal = result.GrandTotal.Add(bucket.TotalAmount)
	}

	return result
}

func bucketKey(date time.Time, granularity domain.Granularity) string {
	switch granularity {
	case domain.GranularityDay:
		return date.Format(time.DateOnly)
	case domain.GranularityWeek:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case domain.GranularityMonth:
		return date.Format("2006-01")
	case domain.GranularityYear:
		return date.Format("2006")
	}
	return ""
}

func bucketLabel(date time.Time, granularity domain.Granularity) string {
	switch granularity {
	case domain.GranularityDay:
		return date.Format("02/01")
	case domain.GranularityWeek:
		_, week := date.ISOWeek()
		return fmt.Sprintf("Semana %d", week)
	case domain.GranularityMonth:
		return date.Format("Jan 2006")
	case domain.GranularityYear:
		return date.Format("2006")
	}
	return ""
}
