package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/internal/config"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// SalesSource é a origem das vendas registradas
type SalesSource interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

// NameResolver resolve os nomes de clientes e produtos já conhecidos
type NameResolver interface {
	ProductName(id string) (string, bool)
	CustomerName(id string) (string, bool)
}

type Reporter interface {
	SalesReport(ctx context.Context, filters domain.ReportFilters) (*domain.SalesAggregate, error)
	Top(ctx context.Context, filters domain.TopFilters) (*domain.TopRanking, error)
	DailySnapshot(ctx context.Context, date time.Time) (*domain.ReportSnapshot, error)
}

type Service struct {
	cfg   *config.Config
	sales SalesSource
	names NameResolver
	now   func() time.Time
}

func NewService(cfg *config.Config, sales SalesSource, names NameResolver) *Service {
	return &Service{
		cfg:   cfg,
		sales: sales,
		names: names,
		now:   time.Now,
	}
}

// SalesReport agrega as vendas do período. Sem datas, usa do início do mês até hoje.
func (s *Service) SalesReport(ctx context.Context, filters domain.ReportFilters) (*domain.SalesAggregate, error) {
	sales, err := s.sales.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas: %w", err)
	}

	loc := s.location()
	now := s.now().In(loc)
	start := filters.StartDate
	if start.IsZero() {
		start = utils.StartOfMonth(now)
	}
	end := filters.EndDate
	if end.IsZero() {
		end = utils.EndOfDay(now)
	}

	opts := []AggregateOption{WithLocation(loc)}
	if filters.SortBuckets || s.cfg.Reports.SortBuckets {
		opts = append(opts, WithSortedBuckets())
	}

	aggregate := Aggregate(sales, filters.Granularity, start, end, opts...)

	logrus.WithFields(logrus.Fields{
		"report_granularity": aggregate.Granularity,
		"report_buckets":     len(aggregate.Buckets),
		"sale_total":         len(sales),
	}).Debug("Relatório de vendas calculado")

	return &aggregate, nil
}

// Top calcula os clientes com mais compras e os produtos mais vendidos
func (s *Service) Top(ctx context.Context, filters domain.TopFilters) (*domain.TopRanking, error) {
	sales, err := s.sales.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas: %w", err)
	}

	return s.rank(sales, filters), nil
}

// DailySnapshot monta o relatório diário de date para ser persistido
func (s *Service) DailySnapshot(ctx context.Context, date time.Time) (*domain.ReportSnapshot, error) {
	sales, err := s.sales.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas: %w", err)
	}

	loc := s.location()
	start := utils.StartOfDay(date.In(loc))
	end := utils.EndOfDay(start)

	daySales := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.InRange(start, end) {
			daySales = append(daySales, sale)
		}
	}

	ranking := s.rank(daySales, domain.TopFilters{ByUnits: true})

	return &domain.ReportSnapshot{
		Date:         start,
		Aggregate:    Aggregate(daySales, domain.GranularityDay, start, end, WithLocation(loc)),
		TopCustomers: ranking.TopCustomers,
		TopProducts:  ranking.TopProducts,
	}, nil
}

// location é o fuso dos relatórios. Sem configuração, usa UTC.
func (s *Service) location() *time.Location {
	if s.cfg.Reports.Location == nil {
		return time.UTC
	}
	return s.cfg.Reports.Location
}

func (s *Service) rank(sales []domain.Sale, filters domain.TopFilters) *domain.TopRanking {
	customerLimit := filters.CustomerLimit
	if customerLimit == 0 {
		customerLimit = s.cfg.Reports.TopCustomers
	}
	productLimit := filters.ProductLimit
	if productLimit == 0 {
		productLimit = s.cfg.Reports.TopProducts
	}

	ranking := &domain.TopRanking{
		TopCustomers: TopEntities(sales, domain.RankByCustomer, customerLimit),
	}
	if filters.ByUnits {
		ranking.TopProducts = TopProductsByUnits(sales, productLimit)
	} else {
		ranking.TopProducts = TopEntities(sales, domain.RankByProduct, productLimit)
	}

	if s.names != nil {
		for i := range ranking.TopCustomers {
			ranking.TopCustomers[i].Name, _ = s.names.CustomerName(ranking.TopCustomers[i].EntityID)
		}
		for i := range ranking.TopProducts {
			ranking.TopProducts[i].Name, _ = s.names.ProductName(ranking.TopProducts[i].EntityID)
		}
	}

	return ranking
}
