package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

var errInjected = errors.New("injected failure")

// memPrimary is an in-memory Primary with failure injection.
type memPrimary struct {
	mu      sync.Mutex
	nextID  int
	records []core.Product

	listErr    error
	failInsert func(p core.Product) bool
	failDelete func(id string) bool
	inserts    int
	deletes    int
}

func (m *memPrimary) Name() string { return "mem" }

func (m *memPrimary) List(ctx context.Context) ([]core.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]core.Product, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *memPrimary) Insert(ctx context.Context, p core.Product) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts++
	if m.failInsert != nil && m.failInsert(p) {
		return "", errInjected
	}
	m.nextID++
	p.ID = fmt.Sprintf("id-%d", m.nextID)
	m.records = append(m.records, p)
	return p.ID, nil
}

func (m *memPrimary) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	if m.failDelete != nil && m.failDelete(id) {
		return errInjected
	}
	for i, p := range m.records {
		if p.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memPrimary) seed(products ...core.Product) {
	for _, p := range products {
		_, _ = m.Insert(context.Background(), p)
	}
	m.inserts = 0
}

// atomicMem adds ReplaceAll to memPrimary.
type atomicMem struct {
	memPrimary
	replaceErr error
	replaced   int
}

func (a *atomicMem) ReplaceAll(ctx context.Context, products []core.Product) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.replaced++
	if a.replaceErr != nil {
		return a.replaceErr
	}
	a.records = a.records[:0]
	for _, p := range products {
		a.nextID++
		p.ID = fmt.Sprintf("id-%d", a.nextID)
		a.records = append(a.records, p)
	}
	return nil
}
