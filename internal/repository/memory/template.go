package memory

import (
	"context"

	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/service/template"
	"github.com/ignite/listserv/internal/service/user"
)

// TemplateRepo implements template.Repository.
type TemplateRepo struct{ s *Store }

func (r *TemplateRepo) Create(_ context.Context, t *domain.Template) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[t.UserID]; !ok {
		return user.ErrNotFound
	}
	t.ID = r.s.id()
	r.s.templates[t.ID] = *t
	return nil
}

func (r *TemplateRepo) Get(_ context.Context, id int64) (*domain.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.templates[id]
	if !ok {
		return nil, template.ErrNotFound
	}
	return &t, nil
}

func (r *TemplateRepo) ListByUser(_ context.Context, userID int64) ([]domain.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.templates, func(t domain.Template) bool { return t.UserID == userID }), nil
}

func (r *TemplateRepo) Update(_ context.Context, id int64, f template.UpdateFields) (*domain.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.templates[id]
	if !ok {
		return nil, template.ErrNotFound
	}
	if f.Name != nil {
		t.Name = *f.Name
	}
	if f.Content != nil {
		t.Content = *f.Content
	}
	r.s.templates[id] = t
	return &t, nil
}

func (r *TemplateRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.templates[id]; !ok {
		return template.ErrNotFound
	}
	r.s.deleteTemplate(id)
	return nil
}
