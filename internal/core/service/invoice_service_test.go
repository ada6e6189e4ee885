package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/saasdash/dashboard-api/internal/core/domain"
)

type stubInvoiceRepo struct {
	byID   map[string]*domain.Invoice
	nextID int
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{byID: make(map[string]*domain.Invoice)}
}

func cloneInvoice(i *domain.Invoice) *domain.Invoice {
	clone := *i
	return &clone
}

func (r *stubInvoiceRepo) Create(_ context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	copy := cloneInvoice(invoice)
	if copy.ID == "" {
		r.nextID++
		copy.ID = string(rune('a' + r.nextID))
	}
	r.byID[copy.ID] = cloneInvoice(copy)
	return copy, nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id string) (*domain.Invoice, error) {
	if i, ok := r.byID[id]; ok {
		return cloneInvoice(i), nil
	}
	return nil, domain.ErrInvoiceNotFound
}

func (r *stubInvoiceRepo) List(_ context.Context) ([]*domain.Invoice, error) {
	invoices := make([]*domain.Invoice, 0, len(r.byID))
	for _, i := range r.byID {
		invoices = append(invoices, cloneInvoice(i))
	}
	return invoices, nil
}

func (r *stubInvoiceRepo) ListByUser(_ context.Context, userID string) ([]*domain.Invoice, error) {
	invoices := make([]*domain.Invoice, 0)
	for _, i := range r.byID {
		if i.UserID == userID {
			invoices = append(invoices, cloneInvoice(i))
		}
	}
	return invoices, nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	if _, ok := r.byID[invoice.ID]; !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	r.byID[invoice.ID] = cloneInvoice(invoice)
	return cloneInvoice(invoice), nil
}

func (r *stubInvoiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrInvoiceNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestInvoiceService_CreateOwned_PinsCaller(t *testing.T) {
	svc := NewInvoiceService(newStubInvoiceRepo(), zerolog.Nop())

	invoice, err := svc.CreateOwned(context.Background(), "owner-1", 42.5, "consulting")
	if err != nil {
		t.Fatalf("create owned: %v", err)
	}
	if invoice.UserID != "owner-1" {
		t.Fatalf("invoice not pinned to caller: %q", invoice.UserID)
	}
	if invoice.Amount != 42.5 || invoice.Description != "consulting" {
		t.Fatalf("unexpected invoice: %+v", invoice)
	}
}

func TestInvoiceService_UpdateOwned_Foreign(t *testing.T) {
	svc := NewInvoiceService(newStubInvoiceRepo(), zerolog.Nop())

	created, err := svc.CreateOwned(context.Background(), "owner-1", 10, "x")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpdateOwned(context.Background(), "owner-2", created.ID, 1, "y"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestInvoiceService_ListByUser(t *testing.T) {
	svc := NewInvoiceService(newStubInvoiceRepo(), zerolog.Nop())

	if _, err := svc.CreateOwned(context.Background(), "owner-1", 10, "a"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateOwned(context.Background(), "owner-2", 20, "b"); err != nil {
		t.Fatalf("create: %v", err)
	}

	invoices, err := svc.ListByUser(context.Background(), "owner-2")
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(invoices) != 1 || invoices[0].Description != "b" {
		t.Fatalf("unexpected listing: %+v", invoices)
	}
}

func TestInvoiceService_Delete_Missing(t *testing.T) {
	svc := NewInvoiceService(newStubInvoiceRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "nope"); err != domain.ErrInvoiceNotFound {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}
