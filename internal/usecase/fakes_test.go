package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"game-catalog/internal/data/entity"
	"game-catalog/internal/data/repository"
	"game-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeGameRepo struct {
	mu sync.Mutex

	games       map[uuid.UUID]*entity.Game
	related     []*entity.Game
	selectors   map[string][]*entity.Game
	selectorErr error
	incErr      error

	total        int64
	searchResult []*entity.Game
	countCalls   int
	searchLimit  int
	searchOffset int
	lastFilter   repository.GameFilter

	created      []*entity.Game
	createdLinks []entity.GameLinks
	views        map[uuid.UUID]int
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{
		games:     make(map[uuid.UUID]*entity.Game),
		selectors: make(map[string][]*entity.Game),
		views:     make(map[uuid.UUID]int),
	}
}

func (f *fakeGameRepo) Create(ctx context.Context, game *entity.Game, links entity.GameLinks) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, game)
	f.createdLinks = append(f.createdLinks, links)
	f.games[game.ID] = game
	return nil
}

func (f *fakeGameRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	game, ok := f.games[id]
	if !ok {
		return nil, nil
	}
	clone := *game
	return &clone, nil
}

func (f *fakeGameRepo) Update(ctx context.Context, game *entity.Game, links *entity.GameLinks) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.games[game.ID]; !ok {
		return repository.ErrNotFound
	}
	f.games[game.ID] = game
	return nil
}

func (f *fakeGameRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.games[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.games, id)
	return nil
}

func (f *fakeGameRepo) Search(ctx context.Context, filter repository.GameFilter, limit, offset int) ([]*entity.Game, error) {
	f.lastFilter = filter
	f.searchLimit = limit
	f.searchOffset = offset
	return f.searchResult, nil
}

func (f *fakeGameRepo) Count(ctx context.Context, filter repository.GameFilter) (int64, error) {
	f.countCalls++
	return f.total, nil
}

func (f *fakeGameRepo) FindBySelector(ctx context.Context, selector repository.Selector) ([]*entity.Game, error) {
	if f.selectorErr != nil && selector.Name == repository.SelectorNew.Name {
		return nil, f.selectorErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selectors[selector.Name], nil
}

func (f *fakeGameRepo) FindRelated(ctx context.Context, gameID uuid.UUID, limit int) ([]*entity.Game, error) {
	if len(f.related) > limit {
		return f.related[:limit], nil
	}
	return f.related, nil
}

func (f *fakeGameRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if f.incErr != nil {
		return f.incErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.views[id]++
	return nil
}

type fakeGenreRepo struct {
	mu     sync.Mutex
	all    []*entity.Genre
	byGame map[uuid.UUID][]*entity.Genre
	calls  int
}

func (f *fakeGenreRepo) Create(ctx context.Context, genre *entity.Genre) error {
	f.all = append(f.all, genre)
	return nil
}

func (f *fakeGenreRepo) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	return f.all, nil
}

func (f *fakeGenreRepo) FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Genre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byGame[gameID], nil
}

func (f *fakeGenreRepo) FindByGameIDs(ctx context.Context, gameIDs []uuid.UUID) (map[uuid.UUID][]*entity.Genre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	out := make(map[uuid.UUID][]*entity.Genre)
	for _, id := range gameIDs {
		if genres, ok := f.byGame[id]; ok {
			out[id] = genres
		}
	}
	return out, nil
}

type fakeCompanyRepo struct {
	developers map[uuid.UUID][]*entity.Company
	publishers map[uuid.UUID][]*entity.Company
	created    []*entity.Company
	createErr  error
}

func (f *fakeCompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, company)
	return nil
}

func (f *fakeCompanyRepo) FindAll(ctx context.Context) ([]*entity.Company, error) {
	return f.created, nil
}

func (f *fakeCompanyRepo) FindDevelopersByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Company, error) {
	return f.developers[gameID], nil
}

func (f *fakeCompanyRepo) FindPublishersByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Company, error) {
	return f.publishers[gameID], nil
}

func (f *fakeCompanyRepo) FindByPlatformIDs(ctx context.Context, platformIDs []uuid.UUID) (map[uuid.UUID][]*entity.Company, error) {
	return map[uuid.UUID][]*entity.Company{}, nil
}

type fakePlatformRepo struct {
	byGame   map[uuid.UUID][]*entity.Platform
	byReview map[uuid.UUID][]*entity.Platform
}

func (f *fakePlatformRepo) Create(ctx context.Context, platform *entity.Platform) error {
	return nil
}

func (f *fakePlatformRepo) FindAll(ctx context.Context) ([]*entity.Platform, error) {
	return nil, nil
}

func (f *fakePlatformRepo) FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Platform, error) {
	return f.byGame[gameID], nil
}

func (f *fakePlatformRepo) FindByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID][]*entity.Platform, error) {
	out := make(map[uuid.UUID][]*entity.Platform)
	for _, id := range reviewIDs {
		out[id] = f.byReview[id]
	}
	return out, nil
}

type fakeReviewRepo struct {
	reviews []*entity.GameReview
	deleted []uuid.UUID
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.GameReview) error {
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.GameReview, error) {
	for _, r := range f.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.GameReview, error) {
	var out []*entity.GameReview
	for _, r := range f.reviews {
		if r.GameID == gameID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions    []*entity.Session
	revoked     []uuid.UUID
	revokedUser []uuid.UUID
	purgeBefore time.Time
	purged      int64
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	for _, s := range f.sessions {
		if s.Token == token {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token uuid.UUID) error {
	for _, s := range f.sessions {
		if s.Token == token {
			f.revoked = append(f.revoked, token)
			return nil
		}
	}
	return errors.Join(errors.New("session"), repository.ErrNotFound)
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) (int64, error) {
	f.revokedUser = append(f.revokedUser, userID)
	var n int64
	for _, s := range f.sessions {
		if s.UserID == userID && s.RevokedAt == nil {
			n++
		}
	}
	return n, nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	f.purgeBefore = cutoff
	return f.purged, nil
}

type fakeStore struct {
	game     *fakeGameRepo
	genre    *fakeGenreRepo
	company  *fakeCompanyRepo
	platform *fakePlatformRepo
	review   *fakeReviewRepo
	user     *fakeUserRepo
	session  *fakeSessionRepo
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		game:     newFakeGameRepo(),
		genre:    &fakeGenreRepo{byGame: make(map[uuid.UUID][]*entity.Genre)},
		company:  &fakeCompanyRepo{developers: map[uuid.UUID][]*entity.Company{}, publishers: map[uuid.UUID][]*entity.Company{}},
		platform: &fakePlatformRepo{byGame: map[uuid.UUID][]*entity.Platform{}, byReview: map[uuid.UUID][]*entity.Platform{}},
		review:   &fakeReviewRepo{},
		user:     &fakeUserRepo{},
		session:  &fakeSessionRepo{},
	}
}

func (s *fakeStore) repository() *repository.Repository {
	return &repository.Repository{
		User:     s.user,
		Session:  s.session,
		Game:     s.game,
		Genre:    s.genre,
		Company:  s.company,
		Platform: s.platform,
		Review:   s.review,
	}
}

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{Name: "game-catalog"},
		Site: utils.SiteConfig{
			Title:       "Game Catalog",
			Author:      "Catalog Team",
			Description: "Browse games",
			Keywords:    []string{"games", "reviews"},
		},
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
