package reporting

import (
	"slices"

	"github.com/vfg2006/shop-manager-api/internal/domain"
)

// TopEntities conta as ocorrências de cada cliente ou produto em todas as vendas,
// sem filtro de data. Empates mantêm a ordem em que a entidade apareceu primeiro.
func TopEntities(sales []domain.Sale, key domain.RankKey, limit int) []domain.RankedEntry {
	counter := newEntityCounter()
	for _, sale := range sales {
		counter.add(entityID(sale, key), 1)
	}
	return counter.top(limit)
}

// TopProductsByUnits ordena os produtos pelas unidades vendidas
func TopProductsByUnits(sales []domain.Sale, limit int) []domain.RankedEntry {
	counter := newEntityCounter()
	for _, sale := range sales {
		for _, item := range sale.Units() {
			counter.add(item.ProductID, item.Quantity)
		}
	}
	return counter.top(limit)
}

func entityID(sale domain.Sale, key domain.RankKey) string {
	switch key {
	case domain.RankByCustomer:
		return sale.CustomerID
	case domain.RankByProduct:
		return sale.ProductID
	}
	return ""
}

type entityCounter struct {
	index   map[string]int
	entries []domain.RankedEntry
}

func newEntityCounter() *entityCounter {
	return &entityCounter{index: make(map[string]int)}
}

func (c *entityCounter) add(id string, n int) {
	if id == "" {
		return
	}
	pos, ok := c.index[id]
	if !ok {
		pos = len(c.entries)
		c.index[id] = pos
		c.entries = append(c.entries, domain.RankedEntry{EntityID: id})
	}
	c.entries[pos].OccurrenceCount += n
}

func (c *entityCounter) top(limit int) []domain.RankedEntry {
	if limit <= 0 || len(c.entries) == 0 {
		return []domain.RankedEntry{}
	}

	slices.SortStableFunc(c.entries, func(a, b domain.RankedEntry) int {
		return b.OccurrenceCount - a.OccurrenceCount
	})

	if len(c.entries) > limit {
		return c.entries[:limit]
	}
	return c.entries
}
