package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-manager-api/internal/domain"
)

func sale(date string, amount string) domain.Sale {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return domain.Sale{Date: d, Amount: decimal.RequireFromString(amount)}
}

func day(date string) time.Time {
	d, _ := time.Parse(time.DateOnly, date)
	return d
}

func TestAggregate_PorMes(t *testing.T) {
	sales := []domain.Sale{
		sale("2024-01-05", "100"),
		sale("2024-01-05", "50"),
		sale("2024-02-01", "30"),
	}

	result := Aggregate(sales, domain.GranularityMonth, day("2024-01-01"), day("2024-12-31"))

	require.Len(t, result.Buckets, 2)
	assert.Equal(t, "Jan 2024", result.Buckets[0].Label)
	assert.Equal(t, "2024-01", result.Buckets[0].Key)
	assert.True(t, decimal.NewFromInt(150).Equal(result.Buckets[0].TotalAmount))
	assert.Equal(t, "Feb 2024", result.Buckets[1].Label)
	assert.True(t, decimal.NewFromInt(30).Equal(result.Buckets[1].TotalAmount))
	assert.True(t, decimal.NewFromInt(180).Equal(result.GrandTotal))
}

func TestAggregate_Granularidades(t *testing.T) {
	sales := []domain.Sale{
		sale("2024-03-10", "10.10"),
		sale("2024-01-02", "20.20"),
		sale("2024-03-10", "0.30"),
	}

	tests := []struct {
		name        string
		granularity domain.Granularity
		wantKeys    []string
		wantLabels  []string
	}{
		{
			name:        "dia",
			granularity: domain.GranularityDay,
			wantKeys:    []string{"2024-03-10", "2024-01-02"},
			wantLabels:  []string{"10/03", "02/01"},
		},
		{
			name:        "semana ISO",
			granularity: domain.GranularityWeek,
			wantKeys:    []string{"2024-W10", "2024-W01"},
			wantLabels:  []string{"Semana 10", "Semana 1"},
		},
		{
			name:        "mês",
			granularity: domain.GranularityMonth,
			wantKeys:    []string{"2024-03", "2024-01"},
			wantLabels:  []string{"Mar 2024", "Jan 2024"},
		},
		{
			name:        "ano",
			granularity: domain.GranularityYear,
			wantKeys:    []string{"2024"},
			wantLabels:  []string{"2024"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(sales, tt.granularity, day("2024-01-01"), day("2024-12-31"))

			var keys, labels []string
			sum := decimal.Zero
			for _, b := range result.Buckets {
				keys = append(keys, b.Key)
				labels = append(labels, b.Label)
				sum = sum.Add(b.TotalAmount)
			}

			assert.Equal(t, tt.wantKeys, keys)
			assert.Equal(t, tt.wantLabels, labels)
			assert.True(t, sum.Equal(result.GrandTotal))
			assert.True(t, decimal.RequireFromString("30.60").Equal(result.GrandTotal))
		})
	}
}

func TestAggregate_MantemOrdemDePrimeiraOcorrencia(t *testing.T) {
	sales := []domain.Sale{
		sale("2024-02-01", "1"),
		sale("2024-01-01", "2"),
		sale("2024-02-15", "3"),
	}

	unsorted := Aggregate(sales, domain.GranularityMonth, day("2024-01-01"), day("2024-12-31"))
	require.Len(t, unsorted.Buckets, 2)
	assert.Equal(t, "2024-02", unsorted.Buckets[0].Key)

	sorted := Aggregate(sales, domain.GranularityMonth, day("2024-01-01"), day("2024-12-31"), WithSortedBuckets())
	require.Len(t, sorted.Buckets, 2)
	assert.Equal(t, "2024-01", sorted.Buckets[0].Key)
	assert.Equal(t, "2024-02", sorted.Buckets[1].Key)
	assert.True(t, unsorted.GrandTotal.Equal(sorted.GrandTotal))
}

func TestAggregate_IntervaloFechado(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	sales := []domain.Sale{
		{Date: start, Amount: decimal.NewFromInt(1)},
		{Date: end, Amount: decimal.NewFromInt(2)},
		{Date: start.Add(-time.Second), Amount: decimal.NewFromInt(100)},
		{Date: end.Add(time.Second), Amount: decimal.NewFromInt(100)},
	}

	result := Aggregate(sales, domain.GranularityYear, start, end)

	assert.True(t, decimal.NewFromInt(3).Equal(result.GrandTotal))
}

func TestAggregate_CasosDeBorda(t *testing.T) {
	sales := []domain.Sale{sale("2024-01-05", "100")}

	t.Run("nenhuma venda no período", func(t *testing.T) {
		result := Aggregate(sales, domain.GranularityDay, day("2025-01-01"), day("2025-01-31"))
		assert.Empty(t, result.Buckets)
		assert.True(t, result.GrandTotal.IsZero())
	})

	t.Run("lista vazia", func(t *testing.T) {
		result := Aggregate(nil, domain.GranularityDay, day("2024-01-01"), day("2024-01-31"))
		assert.NotNil(t, result.Buckets)
		assert.True(t, result.GrandTotal.IsZero())
	})

	t.Run("granularidade desconhecida", func(t *testing.T) {
		result := Aggregate(sales, domain.Granularity("trimestre"), day("2024-01-01"), day("2024-12-31"))
		assert.Empty(t, result.Buckets)
		assert.True(t, result.GrandTotal.IsZero())
	})
}

func TestAggregate_NaoAlteraAsVendas(t *testing.T) {
	sales := []domain.Sale{sale("2024-02-01", "1"), sale("2024-01-01", "2")}
	original := append([]domain.Sale(nil), sales...)

	Aggregate(sales, domain.GranularityMonth, day("2024-01-01"), day("2024-12-31"), WithSortedBuckets())

	assert.Equal(t, original, sales)
}

func TestAggregate_SomaExataEmCentavos(t *testing.T) {
	var sales []domain.Sale
	for i := 0; i < 10; i++ {
		sales = append(sales, sale("2024-01-05", "0.10"))
	}

	result := Aggregate(sales, domain.GranularityDay, day("2024-01-01"), day("2024-01-31"))

	assert.Equal(t, "1.00", result.GrandTotal.StringFixed(2))
	assert.True(t, decimal.NewFromInt(1).Equal(result.GrandTotal))
}

func TestAggregate_MesmoInstanteComOffsetsDiferentes(t *testing.T) {
	lima := time.FixedZone("PET", -5*60*60)
	first, err := time.Parse(time.RFC3339, "2024-01-31T23:30:00-05:00")
	require.NoError(t, err)
	second, err := time.Parse(time.RFC3339, "2024-02-01T04:30:00Z")
	require.NoError(t, err)
	require.True(t, first.Equal(second))

	sales := []domain.Sale{
		{Date: first, Amount: decimal.NewFromInt(10)},
		{Date: second, Amount: decimal.NewFromInt(20)},
	}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, lima)
	end := time.Date(2024, 12, 31, 23, 59, 59, 0, lima)

	tests := []struct {
		name      string
		loc       *time.Location
		wantKey   string
		wantLabel string
	}{
		{name: "fuso de Lima", loc: lima, wantKey: "2024-01", wantLabel: "Jan 2024"},
		{name: "UTC", loc: time.UTC, wantKey: "2024-02", wantLabel: "Feb 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(sales, domain.GranularityMonth, start, end, WithLocation(tt.loc))

			require.Len(t, result.Buckets, 1)
			assert.Equal(t, tt.wantKey, result.Buckets[0].Key)
			assert.Equal(t, tt.wantLabel, result.Buckets[0].Label)
			assert.True(t, decimal.NewFromInt(30).Equal(result.Buckets[0].TotalAmount))
		})
	}
}
