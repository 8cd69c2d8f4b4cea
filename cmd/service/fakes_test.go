package service

import (
	"context"
	"sync"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
	"github.com/fidellopezm03/giakiemso-backend/cmd/repository"
)

type fakeProductRepo struct {
	mu        sync.Mutex
	products  []model.Product
	queries   []model.ProductQuery
	created   []*model.Product
	updated   []*model.Product
	deleted   []string
	lowStock  int
	err       error
	countErr  error
	notFound  bool
	callCount int
}

func (r *fakeProductRepo) List(_ context.Context, q model.ProductQuery) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.callCount++
	r.queries = append(r.queries, q)
	if r.err != nil {
		return nil, r.err
	}
	return append([]model.Product(nil), r.products...), nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*model.Product, error) {
	r.callCount++
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	r.callCount++
	if r.err != nil {
		return r.err
	}
	p.ID = "new-id"
	r.created = append(r.created, p)
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *model.Product) error {
	r.callCount++
	if r.notFound {
		return repository.ErrNotFound
	}
	r.updated = append(r.updated, p)
	return r.err
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	r.callCount++
	if r.notFound {
		return repository.ErrNotFound
	}
	r.deleted = append(r.deleted, id)
	return r.err
}

func (r *fakeProductRepo) CountLowStock(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lowStock, r.countErr
}

type fakeOrderRepo struct {
	orders     []model.Order
	err        error
	lastStatus *model.OrderStatus
	lastLimit  int
}

func (r *fakeOrderRepo) ListRecent(_ context.Context, status *model.OrderStatus, limit int) ([]model.Order, error) {
	r.lastStatus, r.lastLimit = status, limit
	return r.orders, r.err
}

func (r *fakeOrderRepo) ListForStats(context.Context) ([]model.Order, error) {
	return r.orders, r.err
}

type fakeCustomerRepo struct {
	count int
	err   error
}

func (r *fakeCustomerRepo) CountActive(context.Context) (int, error) {
	return r.count, r.err
}

type fakeUserRepo struct {
	users     map[string]*model.User
	passwords map[string]string
	err       error
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*model.User{}, passwords: map[string]string{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = "user-" + u.Email
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = hash
	r.passwords[id] = hash
	return nil
}

type fakeMailer struct {
	to, token string
	calls     int
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.calls++
	m.to, m.token = email, token
	return nil
}
