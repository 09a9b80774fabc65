package weatherblog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// memStore хранилище в памяти для сквозных тестов маршрутов.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[int64]*models.Account
	posts    map[int64]*models.Post
	comments map[int64]*models.Comment
}

func newMemStore() *memStore {
	return &memStore{
		accounts: map[int64]*models.Account{},
		posts:    map[int64]*models.Post{},
		comments: map[int64]*models.Comment{},
	}
}

func (s *memStore) Ping(context.Context) error { return nil }

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) FindAccountByID(_ context.Context, id int64) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (s *memStore) FindAccountByUsernameOrEmail(_ context.Context, identifier string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if strings.EqualFold(a.Username, identifier) || strings.EqualFold(a.Email, identifier) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) CreateAccount(_ context.Context, in models.NewAccount) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if strings.EqualFold(a.Username, in.Username) {
			return nil, shared.ErrUsernameTaken
		}
		if a.Email == in.Email {
			return nil, shared.ErrEmailTaken
		}
	}
	now := time.Now().UTC()
	a := &models.Account{
		ID:           s.id(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		FullName:     in.FullName,
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.accounts[a.ID] = a
	cp := *a
	return &cp, nil
}

func (s *memStore) TouchLastLogin(_ context.Context, id int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[id]; ok {
		a.LastLogin = &at
	}
	return nil
}

func (s *memStore) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return shared.ErrNotFound
	}
	a.PasswordHash = hash
	return nil
}

func (s *memStore) UpdateProfile(_ context.Context, id int64, fullName *string, email string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	for _, other := range s.accounts {
		if other.ID != id && other.Email == email {
			return nil, shared.ErrEmailTaken
		}
	}
	a.FullName = fullName
	a.Email = email
	cp := *a
	return &cp, nil
}

func (s *memStore) SetAccountActive(_ context.Context, id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return shared.ErrNotFound
	}
	a.IsActive = active
	return nil
}

func (s *memStore) withAuthor(p *models.Post) *models.Post {
	cp := *p
	if a, ok := s.accounts[p.AuthorID]; ok {
		cp.AuthorUsername = a.Username
		cp.AuthorName = a.FullName
	}
	for _, c := range s.comments {
		if c.PostID == p.ID {
			cp.CommentCount++
		}
	}
	return &cp
}

func (s *memStore) CreatePost(_ context.Context, post models.Post) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = s.id()
	post.CreatedAt = time.Now().UTC()
	post.UpdatedAt = post.CreatedAt
	s.posts[post.ID] = &post
	return s.withAuthor(&post), nil
}

func (s *memStore) GetPost(_ context.Context, id int64) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return s.withAuthor(p), nil
}

func (s *memStore) sortedPosts() []*models.Post {
	out := make([]*models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, s.withAuthor(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (s *memStore) ListPublishedPosts(_ context.Context, limit, offset int) ([]*models.PostSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.PostSummary{}
	for _, p := range s.sortedPosts() {
		if p.Status != models.PostPublished {
			continue
		}
		if offset > 0 {
			offset--
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, &models.PostSummary{
			ID:             p.ID,
			Title:          p.Title,
			Excerpt:        p.Content,
			Status:         p.Status,
			AuthorUsername: p.AuthorUsername,
			CommentCount:   p.CommentCount,
			CreatedAt:      p.CreatedAt,
		})
	}
	return out, nil
}

func (s *memStore) CountPublishedPosts(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.posts {
		if p.Status == models.PostPublished {
			n++
		}
	}
	return n, nil
}

func (s *memStore) ListAllPosts(context.Context) ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedPosts(), nil
}

func (s *memStore) UpdatePost(_ context.Context, post models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[post.ID]
	if !ok {
		return shared.ErrNotFound
	}
	p.Title, p.Content, p.CoverImage, p.Status = post.Title, post.Content, post.CoverImage, post.Status
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *memStore) DeletePost(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.posts, id)
	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
		}
	}
	return nil
}

func (s *memStore) ListComments(_ context.Context, postID int64) ([]*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.Comment{}
	for _, c := range s.comments {
		if c.PostID == postID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) CreateComment(_ context.Context, postID, authorID int64, content string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	c := &models.Comment{ID: s.id(), PostID: postID, AuthorID: authorID, Content: content, CreatedAt: now, UpdatedAt: now}
	s.comments[c.ID] = c
	cp := *c
	return &cp, nil
}

func (s *memStore) GetComment(_ context.Context, id int64) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *memStore) UpdateComment(_ context.Context, id int64, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return shared.ErrNotFound
	}
	c.Content = content
	return nil
}

func (s *memStore) DeleteComment(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}
