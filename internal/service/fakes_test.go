package service

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/model"
	"Boomer/internal/pkg/mongo"
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"
)

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[string]*model.Movie
	nextID uint64
}

func newFakeMovieRepo(movies ...*model.Movie) *fakeMovieRepo {
	r := &fakeMovieRepo{movies: make(map[string]*model.Movie)}
	for _, m := range movies {
		_ = r.CreateMovie(context.Background(), m)
	}
	return r
}

func (r *fakeMovieRepo) CreateMovie(_ context.Context, movie *model.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	movie.ID = r.nextID
	if movie.CreatedAt.IsZero() {
		movie.CreatedAt = time.Now()
	}
	cp := *movie
	r.movies[movie.MovieID] = &cp
	return nil
}

func (r *fakeMovieRepo) get(id string) *model.Movie {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.movies[id]; ok {
		cp := *m
		return &cp
	}
	return nil
}

func (r *fakeMovieRepo) all(filter func(*model.Movie) bool) []*model.Movie {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Movie, 0)
	for _, m := range r.movies {
		if filter == nil || filter(m) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *fakeMovieRepo) GetMovieByMovieID(_ context.Context, movieID string) (*model.Movie, error) {
	return r.get(movieID), nil
}

func (r *fakeMovieRepo) GetMovies(context.Context) ([]*model.Movie, error) {
	return r.all(nil), nil
}

func (r *fakeMovieRepo) GetMoviesByGenres(_ context.Context, genres []string) ([]*model.Movie, error) {
	return r.all(func(m *model.Movie) bool {
		for _, g := range genres {
			if slices.Contains(m.MovieGenre, g) {
				return true
			}
		}
		return false
	}), nil
}

func (r *fakeMovieRepo) GetMoviesByType(_ context.Context, movieType string) ([]*model.Movie, error) {
	return r.all(func(m *model.Movie) bool { return m.Type == movieType }), nil
}

func (r *fakeMovieRepo) SearchMoviesByTitle(_ context.Context, title string) ([]*model.Movie, error) {
	return r.all(func(m *model.Movie) bool { return strings.Contains(m.MovieTitle, title) }), nil
}

func (r *fakeMovieRepo) GetMoviesByMovieIDs(_ context.Context, ids []string) ([]*model.Movie, error) {
	return r.all(func(m *model.Movie) bool { return slices.Contains(ids, m.MovieID) }), nil
}

func (r *fakeMovieRepo) UpdateMovie(_ context.Context, movie *model.Movie, _ ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *movie
	r.movies[movie.MovieID] = &cp
	return nil
}

func (r *fakeMovieRepo) UpdateMovieRating(_ context.Context, movieID string, rating, ratingCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.movies[movieID]; ok {
		m.Rating, m.RatingCount = rating, ratingCount
	}
	return nil
}

func (r *fakeMovieRepo) UpdateRecommend(_ context.Context, movieID string, recommend bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.movies[movieID]; ok {
		m.Recommend = recommend
	}
	return nil
}

func (r *fakeMovieRepo) GetRecommendedMovies(context.Context) ([]*model.Movie, error) {
	return r.all(func(m *model.Movie) bool { return m.Recommend }), nil
}

func (r *fakeMovieRepo) GetMovieIDsCreatedSince(_ context.Context, since time.Time) ([]string, error) {
	movies := r.all(func(m *model.Movie) bool { return !m.CreatedAt.Before(since) })
	sort.SliceStable(movies, func(i, j int) bool { return movies[i].CreatedAt.After(movies[j].CreatedAt) })
	ids := make([]string, 0, len(movies))
	for _, m := range movies {
		ids = append(ids, m.MovieID)
	}
	return ids, nil
}

func (r *fakeMovieRepo) GetMovieCardsByMovieIDs(_ context.Context, ids []string) ([]*model.MovieCard, error) {
	cards := make([]*model.MovieCard, 0)
	for _, m := range r.all(func(m *model.Movie) bool { return slices.Contains(ids, m.MovieID) }) {
		cards = append(cards, toCard(m))
	}
	return cards, nil
}

func (r *fakeMovieRepo) GetTopRatedMovies(_ context.Context, limit int) ([]*model.MovieCard, error) {
	movies := r.all(func(m *model.Movie) bool { return m.RatingCount > 0 })
	sort.SliceStable(movies, func(i, j int) bool {
		if movies[i].Rating != movies[j].Rating {
			return movies[i].Rating > movies[j].Rating
		}
		return movies[i].RatingCount > movies[j].RatingCount
	})
	cards := make([]*model.MovieCard, 0)
	for _, m := range movies {
		if len(cards) == limit {
			break
		}
		cards = append(cards, toCard(m))
	}
	return cards, nil
}

func (r *fakeMovieRepo) DeleteMovie(_ context.Context, movieID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movies[movieID]; !ok {
		return 0, nil
	}
	delete(r.movies, movieID)
	return 1, nil
}

func toCard(m *model.Movie) *model.MovieCard {
	return &model.MovieCard{
		MovieID:     m.MovieID,
		MovieTitle:  m.MovieTitle,
		MovieGenre:  m.MovieGenre,
		Type:        m.Type,
		Rating:      m.Rating,
		RatingCount: m.RatingCount,
	}
}

// fakeReviewRepo 按版本号校验写入，conflicts 次数内的写入会被判定为冲突
type fakeReviewRepo struct {
	mu        sync.Mutex
	threads   map[string]*mongo.ReviewThread
	conflicts int
	writes    int
}

func newFakeReviewRepo(movieIDs ...string) *fakeReviewRepo {
	r := &fakeReviewRepo{threads: make(map[string]*mongo.ReviewThread)}
	for _, id := range movieIDs {
		_ = r.Create(context.Background(), mongo.NewReviewThread(id))
	}
	return r
}

func cloneReviewThread(t *mongo.ReviewThread) *mongo.ReviewThread {
	cp := *t
	cp.Reviews = slices.Clone(t.Reviews)
	return &cp
}

func (r *fakeReviewRepo) GetByMovieID(_ context.Context, movieID string) (*mongo.ReviewThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.threads[movieID]; ok {
		return cloneReviewThread(t), nil
	}
	return nil, nil
}

func (r *fakeReviewRepo) GetByMovieIDs(_ context.Context, ids []string) ([]*mongo.ReviewThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*mongo.ReviewThread, 0)
	// 故意倒序返回，调用方不能依赖存储顺序
	for i := len(ids) - 1; i >= 0; i-- {
		if t, ok := r.threads[ids[i]]; ok {
			out = append(out, cloneReviewThread(t))
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Create(_ context.Context, thread *mongo.ReviewThread) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.threads[thread.MovieID]; !ok {
		r.threads[thread.MovieID] = cloneReviewThread(thread)
	}
	return nil
}

func (r *fakeReviewRepo) ReplaceReviews(_ context.Context, movieID string, expectedVersion int64, reviews []mongo.Review) (*mongo.ReviewThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.threads[movieID]
	if !ok {
		return nil, mongo.ErrVersionConflict
	}
	if r.conflicts > 0 {
		r.conflicts--
		t.Version++
		return nil, mongo.ErrVersionConflict
	}
	if t.Version != expectedVersion {
		return nil, mongo.ErrVersionConflict
	}
	r.writes++
	t.Reviews = slices.Clone(reviews)
	if t.Reviews == nil {
		t.Reviews = []mongo.Review{}
	}
	t.Version++
	return cloneReviewThread(t), nil
}

func (r *fakeReviewRepo) DeleteByMovieID(_ context.Context, movieID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.threads, movieID)
	return nil
}

func (r *fakeReviewRepo) AggregateWindowStats(ctx context.Context, ids []string, since time.Time, limit int) ([]*mongo.ReviewWindowStat, error) {
	threads, _ := r.GetByMovieIDs(ctx, ids)
	withThread := make([]string, 0, len(threads))
	for _, id := range ids {
		for _, t := range threads {
			if t.MovieID == id {
				withThread = append(withThread, id)
			}
		}
	}
	return RankTrending(withThread, threads, since, limit), nil
}

type fakeCommentRepo struct {
	mu        sync.Mutex
	threads   map[string]*mongo.CommentThread
	conflicts int
}

func newFakeCommentRepo(movieIDs ...string) *fakeCommentRepo {
	r := &fakeCommentRepo{threads: make(map[string]*mongo.CommentThread)}
	for _, id := range movieIDs {
		_ = r.Create(context.Background(), mongo.NewCommentThread(id))
	}
	return r
}

func cloneCommentThread(t *mongo.CommentThread) *mongo.CommentThread {
	cp := *t
	if t.Comments == nil {
		return &cp
	}
	cp.Comments = make([]mongo.Comment, len(t.Comments))
	for i, c := range t.Comments {
		c.Replies = slices.Clone(c.Replies)
		cp.Comments[i] = c
	}
	return &cp
}

func (r *fakeCommentRepo) GetByMovieID(_ context.Context, movieID string) (*mongo.CommentThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.threads[movieID]; ok {
		return cloneCommentThread(t), nil
	}
	return nil, nil
}

func (r *fakeCommentRepo) Create(_ context.Context, thread *mongo.CommentThread) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.threads[thread.MovieID]; !ok {
		r.threads[thread.MovieID] = cloneCommentThread(thread)
	}
	return nil
}

func (r *fakeCommentRepo) ReplaceComments(_ context.Context, movieID string, expectedVersion int64, comments []mongo.Comment) (*mongo.CommentThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.threads[movieID]
	if !ok {
		return nil, mongo.ErrVersionConflict
	}
	if r.conflicts > 0 {
		r.conflicts--
		t.Version++
		return nil, mongo.ErrVersionConflict
	}
	if t.Version != expectedVersion {
		return nil, mongo.ErrVersionConflict
	}
	t.Comments = comments
	if t.Comments == nil {
		t.Comments = []mongo.Comment{}
	}
	t.Version++
	return cloneCommentThread(t), nil
}

func (r *fakeCommentRepo) DeleteByMovieID(_ context.Context, movieID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.threads, movieID)
	return nil
}

type fakeLinkRepo struct {
	mu     sync.Mutex
	links  map[uint64]*model.DownloadLink
	nextID uint64
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: make(map[uint64]*model.DownloadLink)}
}

func (r *fakeLinkRepo) CreateLink(_ context.Context, link *model.DownloadLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	link.ID = r.nextID
	cp := *link
	cp.RatedBy = slices.Clone(link.RatedBy)
	r.links[link.ID] = &cp
	return nil
}

func (r *fakeLinkRepo) CreateLinks(ctx context.Context, links []*model.DownloadLink) error {
	for _, l := range links {
		if err := r.CreateLink(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeLinkRepo) GetLinkByID(_ context.Context, id uint64) (*model.DownloadLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.links[id]; ok {
		cp := *l
		cp.RatedBy = slices.Clone(l.RatedBy)
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeLinkRepo) GetLinksByMovieID(_ context.Context, movieID string) ([]*model.DownloadLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.DownloadLink, 0)
	for _, l := range r.links {
		if l.MovieID == movieID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLinkRepo) RateLink(_ context.Context, id uint64, delta int, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.links[id]
	if !ok {
		return 0, nil
	}
	l.Rating += delta
	l.RatedBy = append(l.RatedBy, userID)
	return 1, nil
}

func (r *fakeLinkRepo) DeleteLinksByMovieID(_ context.Context, movieID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, l := range r.links {
		if l.MovieID == movieID {
			delete(r.links, id)
		}
	}
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.UserID] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUserByUserID(_ context.Context, userID string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *model.User, _ ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.UserID] = &cp
	return nil
}

type recordingNotifier struct {
	changes []*dto.ReviewChange
	err     error
}

func (n *recordingNotifier) NotifyReviews(_ context.Context, change *dto.ReviewChange) error {
	n.changes = append(n.changes, change)
	return n.err
}

type memoryTrendingCache struct {
	movies []*dto.TrendingMovieDTO
	ok     bool
	sets   int
}

func (c *memoryTrendingCache) GetTrending(context.Context) ([]*dto.TrendingMovieDTO, bool, error) {
	return c.movies, c.ok, nil
}

func (c *memoryTrendingCache) SetTrending(_ context.Context, movies []*dto.TrendingMovieDTO, _ time.Duration) error {
	c.movies, c.ok = movies, true
	c.sets++
	return nil
}

func (c *memoryTrendingCache) Invalidate(context.Context) error {
	c.movies, c.ok = nil, false
	return nil
}

type memoryBlacklist struct {
	entries map[string]time.Duration
}

func (b *memoryBlacklist) Blacklist(_ context.Context, signature string, ttl time.Duration) error {
	if b.entries == nil {
		b.entries = make(map[string]time.Duration)
	}
	b.entries[signature] = ttl
	return nil
}
