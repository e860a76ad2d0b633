package dashboard

import (
	"context"

	"github.com/gescom/backend/internal/domain/catalog"
	"github.com/gescom/backend/internal/domain/client"
	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
	"github.com/gescom/backend/internal/domain/trade"
	"golang.org/x/sync/errgroup"
)

// Counts holds the record totals shown on the dashboard
type Counts struct {
	Partners       int64 `json:"partenaires"`
	Clients        int64 `json:"clients"`
	Products       int64 `json:"products"`
	SupplierOrders int64 `json:"commandes_fournisseurs"`
}

// Module describes a navigable application module
type Module struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
	ComingSoon  bool   `json:"coming_soon"`
}

// DashboardService aggregates totals across the four record tables
type DashboardService struct {
	partnerRepo partner.Repository
	clientRepo  client.Repository
	productRepo catalog.Repository
	orderRepo   trade.Repository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	partnerRepo partner.Repository,
	clientRepo client.Repository,
	productRepo catalog.Repository,
	orderRepo trade.Repository,
) *DashboardService {
	return &DashboardService{
		partnerRepo: partnerRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// GetCounts queries the four tables in parallel. The first failing
// count cancels the others and is returned as the operation's error.
func (s *DashboardService) GetCounts(ctx context.Context) (*Counts, error) {
	var counts Counts
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.partnerRepo.Count(gctx, partner.Filter{})
		counts.Partners = n
		return err
	})
	g.Go(func() error {
		n, err := s.clientRepo.Count(gctx, shared.Filter{})
		counts.Clients = n
		return err
	})
	g.Go(func() error {
		n, err := s.productRepo.Count(gctx, shared.Filter{})
		counts.Products = n
		return err
	})
	g.Go(func() error {
		n, err := s.orderRepo.Count(gctx, shared.Filter{})
		counts.SupplierOrders = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &counts, nil
}

// Modules returns the navigation entries for the application shell
func (s *DashboardService) Modules() []Module {
	return []Module{
		{Key: "partenaires", Title: "Partenaires", Description: "Clients et fournisseurs", Path: "/partenaires"},
		{Key: "clients", Title: "Clients", Description: "Profils clients", Path: "/clients"},
		{Key: "products", Title: "Produits", Description: "Catalogue produits", Path: "/products"},
		{Key: "commandes_fournisseurs", Title: "Commandes fournisseurs", Description: "Suivi des commandes", Path: "/commandes-fournisseurs"},
		{Key: "facturation", Title: "Facturation", Description: "Devis et factures", Path: "/facturation", ComingSoon: true},
		{Key: "comptabilite", Title: "Comptabilité", Description: "Exports comptables", Path: "/comptabilite", ComingSoon: true},
	}
}
