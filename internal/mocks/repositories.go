package mocks

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/content-sharing-api/internal/apperrors"
	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/repository"
)

// NewRepositories creates a repository set backed by in-memory mocks
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		User:        NewMockUserRepository(),
		Article:     NewMockArticleRepository(),
		Interaction: NewMockInteractionRepository(),
		Comment:     NewMockCommentRepository(),
	}
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       map[string]*models.User
	Usernames   map[string]bool
	Emails      map[string]bool
	CreateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:     make(map[string]*models.User),
		Usernames: make(map[string]bool),
		Emails:    make(map[string]bool),
	}
}

func (m *MockUserRepository) WithTx(tx *sql.Tx) repository.UserRepository {
	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	if m.Usernames[user.Username] || m.Emails[user.Email] {
		return apperrors.AlreadyExists("username or email already taken")
	}
	u := *user
	m.Users[user.ID] = &u
	m.Usernames[user.Username] = true
	m.Emails[user.Email] = true
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.Users[id], nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, exists := m.Users[id]
	return exists, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles    map[string]*models.Article
	Authors     *MockUserRepository // author names for joined reads
	CreateError error
	UpdateCalls int
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) WithTx(tx *sql.Tx) repository.ArticleRepository {
	return m
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	a := *article
	m.Articles[article.ID] = &a
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *MockArticleRepository) GetWithAuthor(ctx context.Context, id string) (*models.ArticleWithAuthor, error) {
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	joined := m.join(*a)
	if joined == nil {
		return nil, nil
	}
	return joined, nil
}

func (m *MockArticleRepository) List(ctx context.Context, excludeAuthorID string, limit, offset int) ([]models.ArticleWithAuthor, error) {
	all := m.sortedDesc()
	var result []models.ArticleWithAuthor
	for _, a := range all {
		if a.AuthorID == excludeAuthorID {
			continue
		}
		if joined := m.join(a); joined != nil {
			result = append(result, *joined)
		}
	}
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockArticleRepository) CountExcludingAuthor(ctx context.Context, excludeAuthorID string) (int, error) {
	count := 0
	for _, a := range m.Articles {
		if a.AuthorID != excludeAuthorID {
			count++
		}
	}
	return count, nil
}

func (m *MockArticleRepository) Search(ctx context.Context, query, excludeAuthorID string) ([]models.ArticleWithAuthor, error) {
	var result []models.ArticleWithAuthor
	for _, a := range m.sortedDesc() {
		if a.AuthorID == excludeAuthorID {
			continue
		}
		if !containsFold(a.Title, query) && !containsFold(a.Descriptions, query) {
			continue
		}
		if joined := m.join(a); joined != nil {
			result = append(result, *joined)
		}
	}
	return result, nil
}

func (m *MockArticleRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.ArticleWithAuthor, error) {
	var result []models.ArticleWithAuthor
	for _, a := range m.sortedDesc() {
		if a.AuthorID != authorID {
			continue
		}
		if joined := m.join(a); joined != nil {
			result = append(result, *joined)
		}
	}
	return result, nil
}

func (m *MockArticleRepository) ListByIDs(ctx context.Context, ids []string) ([]models.ArticleWithAuthor, error) {
	var result []models.ArticleWithAuthor
	for _, id := range ids {
		a, ok := m.Articles[id]
		if !ok {
			continue
		}
		if joined := m.join(*a); joined != nil {
			result = append(result, *joined)
		}
	}
	return result, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	m.UpdateCalls++
	a := *article
	m.Articles[article.ID] = &a
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) error {
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

func (m *MockArticleRepository) sortedDesc() []models.Article {
	all := make([]models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	return all
}

// join mirrors the SQL inner join with users: articles whose author is
// unknown are dropped.
func (m *MockArticleRepository) join(a models.Article) *models.ArticleWithAuthor {
	name := "unknown"
	if m.Authors != nil {
		author, ok := m.Authors.Users[a.AuthorID]
		if !ok {
			return nil
		}
		name = author.Name
	}
	return &models.ArticleWithAuthor{Article: a, AuthorName: name}
}

// MockInteractionRepository is a mock implementation of
// InteractionRepository. Add enforces the composite uniqueness the real
// schema enforces with its constraint.
type MockInteractionRepository struct {
	Entries  map[string]*models.Interaction // keyed by kind|viewer|article
	AddError error
}

func NewMockInteractionRepository() *MockInteractionRepository {
	return &MockInteractionRepository{
		Entries: make(map[string]*models.Interaction),
	}
}

func (m *MockInteractionRepository) WithTx(tx *sql.Tx) repository.InteractionRepository {
	return m
}

func entryKey(kind models.InteractionKind, viewerID, articleID string) string {
	return string(kind) + "|" + viewerID + "|" + articleID
}

func (m *MockInteractionRepository) Add(ctx context.Context, entry *models.Interaction) error {
	if m.AddError != nil {
		return m.AddError
	}
	key := entryKey(entry.Kind, entry.ViewerID, entry.ArticleID)
	if _, exists := m.Entries[key]; exists {
		return apperrors.AlreadyExists("duplicate %s entry for this article", entry.Kind)
	}
	e := *entry
	m.Entries[key] = &e
	return nil
}

func (m *MockInteractionRepository) Remove(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) (bool, error) {
	key := entryKey(kind, viewerID, articleID)
	if _, exists := m.Entries[key]; !exists {
		return false, nil
	}
	delete(m.Entries, key)
	return true, nil
}

func (m *MockInteractionRepository) Exists(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) (bool, error) {
	_, exists := m.Entries[entryKey(kind, viewerID, articleID)]
	return exists, nil
}

func (m *MockInteractionRepository) CountForArticle(ctx context.Context, kind models.InteractionKind, articleID string) (int, error) {
	count := 0
	for _, e := range m.Entries {
		if e.Kind == kind && e.ArticleID == articleID {
			count++
		}
	}
	return count, nil
}

func (m *MockInteractionRepository) CountByArticles(ctx context.Context, kind models.InteractionKind, articleIDs []string) (map[string]int, error) {
	wanted := make(map[string]bool, len(articleIDs))
	for _, id := range articleIDs {
		wanted[id] = true
	}
	counts := make(map[string]int)
	for _, e := range m.Entries {
		if e.Kind == kind && wanted[e.ArticleID] {
			counts[e.ArticleID]++
		}
	}
	return counts, nil
}

func (m *MockInteractionRepository) MembershipForViewer(ctx context.Context, kind models.InteractionKind, viewerID string, articleIDs []string) (map[string]bool, error) {
	membership := make(map[string]bool)
	for _, id := range articleIDs {
		if _, exists := m.Entries[entryKey(kind, viewerID, id)]; exists {
			membership[id] = true
		}
	}
	return membership, nil
}

func (m *MockInteractionRepository) ArticleIDsForViewer(ctx context.Context, kind models.InteractionKind, viewerID string) ([]string, error) {
	var entries []*models.Interaction
	for _, e := range m.Entries {
		if e.Kind == kind && e.ViewerID == viewerID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ArticleID)
	}
	return ids, nil
}

func (m *MockInteractionRepository) DeleteForArticle(ctx context.Context, articleID string) error {
	for key, e := range m.Entries {
		if e.ArticleID == articleID {
			delete(m.Entries, key)
		}
	}
	return nil
}

func (m *MockInteractionRepository) Count(ctx context.Context, kind models.InteractionKind) (int, error) {
	count := 0
	for _, e := range m.Entries {
		if e.Kind == kind {
			count++
		}
	}
	return count, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments    map[string]*models.Comment
	Authors     *MockUserRepository
	ArticleRepo *MockArticleRepository
	CreateError error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
	}
}

func (m *MockCommentRepository) WithTx(tx *sql.Tx) repository.CommentRepository {
	return m
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	c := *comment
	m.Comments[comment.ID] = &c
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	c, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (m *MockCommentRepository) GetWithContext(ctx context.Context, id string) (*models.CommentWithAuthor, error) {
	c, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	joined := models.CommentWithAuthor{Comment: *c, AuthorName: "unknown"}
	if m.Authors != nil {
		author, ok := m.Authors.Users[c.AuthorID]
		if !ok {
			return nil, nil
		}
		joined.AuthorName = author.Name
	}
	if m.ArticleRepo != nil {
		article, ok := m.ArticleRepo.Articles[c.ArticleID]
		if !ok {
			return nil, nil
		}
		joined.ArticleTitle = article.Title
	}
	return &joined, nil
}

func (m *MockCommentRepository) ListForArticle(ctx context.Context, articleID string) ([]models.CommentWithAuthor, error) {
	var comments []models.Comment
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})

	var result []models.CommentWithAuthor
	for _, c := range comments {
		joined := models.CommentWithAuthor{Comment: c, AuthorName: "unknown"}
		if m.Authors != nil {
			author, ok := m.Authors.Users[c.AuthorID]
			if !ok {
				continue
			}
			joined.AuthorName = author.Name
		}
		result = append(result, joined)
	}
	return result, nil
}

func (m *MockCommentRepository) CountByArticles(ctx context.Context, articleIDs []string) (map[string]int, error) {
	wanted := make(map[string]bool, len(articleIDs))
	for _, id := range articleIDs {
		wanted[id] = true
	}
	counts := make(map[string]int)
	for _, c := range m.Comments {
		if wanted[c.ArticleID] {
			counts[c.ArticleID]++
		}
	}
	return counts, nil
}

func (m *MockCommentRepository) UpdateBody(ctx context.Context, id, body string, updatedAt time.Time) error {
	if c, ok := m.Comments[id]; ok {
		c.Body = body
		c.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	delete(m.Comments, id)
	return nil
}

func (m *MockCommentRepository) DeleteForArticle(ctx context.Context, articleID string) error {
	for id, c := range m.Comments {
		if c.ArticleID == articleID {
			delete(m.Comments, id)
		}
	}
	return nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}

func containsFold(s, substr string) bool {
	return len(substr) == 0 || indexFold(s, substr) >= 0
}

func indexFold(s, substr string) int {
	lower := func(b byte) byte {
		if b >= 'A' && b <= 'Z' {
			return b + 'a' - 'A'
		}
		return b
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		match := true
		for j := 0; j < len(substr); j++ {
			if lower(s[i+j]) != lower(substr[j]) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
