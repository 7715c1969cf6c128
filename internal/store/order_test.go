package store

import (
	"testing"

	"github.com/vwa-labs/vaultledger/internal/domain"
)

func newTestOrder(owner string, seq uint64, createdAt int64) *domain.TradeOrder {
	return &domain.TradeOrder{
		Address:      domain.OrderAddress(owner, createdAt, seq),
		AssetAddress: domain.AssetAddress(owner, domain.AssetTypeGold, 0),
		OwnerID:      owner,
		OrderType:    domain.OrderTypeSell,
		Quantity:     10,
		PricePerUnit: 5000,
		CreatedAt:    createdAt,
		IsActive:     true,
	}
}

func TestOrderStore_Create_and_Get(t *testing.T) {
	s := NewOrderStore()
	o := newTestOrder("alice", 0, 100)

	if err := s.Create(o); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Get(o.Address)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != o {
		t.Fatal("Get returned a different record")
	}
}

func TestOrderStore_Create_Duplicate(t *testing.T) {
	s := NewOrderStore()
	o := newTestOrder("alice", 0, 100)

	if err := s.Create(o); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Create(newTestOrder("alice", 0, 100)); err != domain.ErrDuplicateOrder {
		t.Fatalf("expected ErrDuplicateOrder, got %v", err)
	}
}

func TestOrderStore_Get_NotFound(t *testing.T) {
	s := NewOrderStore()

	_, err := s.Get("no-such-address")
	if err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderStore_List_Filters(t *testing.T) {
	s := NewOrderStore()
	sell := newTestOrder("alice", 0, 100)
	buy := newTestOrder("alice", 1, 200)
	buy.OrderType = domain.OrderTypeBuy
	consumed := newTestOrder("bob", 0, 300)
	consumed.Consume()

	for _, o := range []*domain.TradeOrder{sell, buy, consumed} {
		if err := s.Create(o); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, total := s.List(OrderFilter{}, 1, 10)
	if total != 3 || len(all) != 3 {
		t.Fatalf("unfiltered list: total=%d len=%d, want 3/3", total, len(all))
	}
	if all[0] != sell || all[2] != consumed {
		t.Fatal("list not in creation order")
	}

	active := true
	activeOnly, total := s.List(OrderFilter{IsActive: &active}, 1, 10)
	if total != 2 || len(activeOnly) != 2 {
		t.Fatalf("active filter: total=%d len=%d, want 2/2", total, len(activeOnly))
	}

	ot := domain.OrderTypeBuy
	owner := "alice"
	got, total := s.List(OrderFilter{OrderType: &ot, OwnerID: &owner}, 1, 10)
	if total != 1 || got[0] != buy {
		t.Fatalf("buy+owner filter returned wrong orders (total=%d)", total)
	}
}

func TestOrderStore_CountActive(t *testing.T) {
	s := NewOrderStore()
	a := newTestOrder("alice", 0, 100)
	b := newTestOrder("alice", 1, 200)
	b.Consume()

	if err := s.Create(a); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Create(b); err != nil {
		t.Fatalf("create: %v", err)
	}

	if got := s.CountActive(); got != 1 {
		t.Fatalf("CountActive = %d, want 1", got)
	}
}

func TestTradeStore_Append_and_List(t *testing.T) {
	s := NewTradeStore()
	assetA := "asset-a"
	assetB := "asset-b"

	s.Append(&domain.Trade{TradeID: "t1", AssetAddress: assetA, ExecutedAt: 100})
	s.Append(&domain.Trade{TradeID: "t2", AssetAddress: assetB, ExecutedAt: 200})
	s.Append(&domain.Trade{TradeID: "t3", AssetAddress: assetA, ExecutedAt: 300})

	all, total := s.List(nil, 1, 10)
	if total != 3 || len(all) != 3 {
		t.Fatalf("unfiltered: total=%d len=%d, want 3/3", total, len(all))
	}
	if all[0].TradeID != "t1" || all[2].TradeID != "t3" {
		t.Fatal("trades not in execution order")
	}

	got, total := s.List(&assetA, 1, 10)
	if total != 2 || got[0].TradeID != "t1" || got[1].TradeID != "t3" {
		t.Fatalf("asset filter returned wrong trades (total=%d)", total)
	}

	page, total := s.List(nil, 2, 2)
	if total != 3 || len(page) != 1 || page[0].TradeID != "t3" {
		t.Fatalf("pagination: total=%d len=%d", total, len(page))
	}
}
