package handler

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"teadiary/internal/domain"
	"teadiary/internal/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// In-memory fakes backing the handler tests. Setting forcedErr makes every
// call fail, for the 500 paths.

type fakeUserRepo struct {
	users     map[string]*domain.User
	forcedErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(u *domain.User) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*domain.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List() ([]domain.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Exists(id string) (bool, error) {
	if f.forcedErr != nil {
		return false, f.forcedErr
	}
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) Update(u *domain.User) (int64, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	if _, ok := f.users[u.ID]; !ok {
		return 0, nil
	}
	cp := *u
	f.users[u.ID] = &cp
	return 1, nil
}

func (f *fakeUserRepo) Delete(id string) (int64, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

type fakeTeaRepo struct {
	teas      map[string]*domain.Tea
	forcedErr error
}

func newFakeTeaRepo() *fakeTeaRepo {
	return &fakeTeaRepo{teas: map[string]*domain.Tea{}}
}

func (f *fakeTeaRepo) Create(t *domain.Tea) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	cp := *t
	f.teas[t.ID] = &cp
	return nil
}

func (f *fakeTeaRepo) FindByID(id string) (*domain.Tea, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if t, ok := f.teas[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTeaRepo) List() ([]domain.Tea, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]domain.Tea, 0, len(f.teas))
	for _, t := range f.teas {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTeaRepo) ListByUser(userID string) ([]domain.Tea, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	var out []domain.Tea
	for _, t := range f.teas {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTeaRepo) Exists(id string) (bool, error) {
	if f.forcedErr != nil {
		return false, f.forcedErr
	}
	_, ok := f.teas[id]
	return ok, nil
}

func (f *fakeTeaRepo) Update(t *domain.Tea) (int64, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	if _, ok := f.teas[t.ID]; !ok {
		return 0, nil
	}
	cp := *t
	f.teas[t.ID] = &cp
	return 1, nil
}

func (f *fakeTeaRepo) Delete(id string) (int64, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	if _, ok := f.teas[id]; !ok {
		return 0, nil
	}
	delete(f.teas, id)
	return 1, nil
}

type fakeTeaTypeRepo struct {
	types map[string]*domain.TeaType
	// teas shares state with a fakeTeaRepo so delete can null references
	teas      *fakeTeaRepo
	forcedErr error
}

func newFakeTeaTypeRepo() *fakeTeaTypeRepo {
	return &fakeTeaTypeRepo{types: map[string]*domain.TeaType{}}
}

func (f *fakeTeaTypeRepo) Create(t *domain.TeaType) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	cp := *t
	f.types[t.ID] = &cp
	return nil
}

func (f *fakeTeaTypeRepo) FindByID(id string) (*domain.TeaType, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if t, ok := f.types[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTeaTypeRepo) List() ([]domain.TeaType, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]domain.TeaType, 0, len(f.types))
	for _, t := range f.types {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTeaTypeRepo) Exists(id string) (bool, error) {
	if f.forcedErr != nil {
		return false, f.forcedErr
	}
	_, ok := f.types[id]
	return ok, nil
}

func (f *fakeTeaTypeRepo) Update(t *domain.TeaType) (int64, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	if _, ok := f.types[t.ID]; !ok {
		return 0, nil
	}
	cp := *t
	f.types[t.ID] = &cp
	return 1, nil
}

func (f *fakeTeaTypeRepo) Delete(id string) (int64, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	if _, ok := f.types[id]; !ok {
		return 0, nil
	}
	delete(f.types, id)
	if f.teas != nil {
		for _, t := range f.teas.teas {
			if t.TeaTypeID != nil && *t.TeaTypeID == id {
				t.TeaTypeID = nil
			}
		}
	}
	return 1, nil
}

type fakeImpressionRepo struct {
	impressions map[string]*domain.Impression
	forcedErr   error
}

func newFakeImpressionRepo() *fakeImpressionRepo {
	return &fakeImpressionRepo{impressions: map[string]*domain.Impression{}}
}

func (f *fakeImpressionRepo) Create(i *domain.Impression) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	cp := *i
	f.impressions[i.ID] = &cp
	return nil
}

func (f *fakeImpressionRepo) FindByID(id string) (*domain.Impression, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if i, ok := f.impressions[id]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeImpressionRepo) List() ([]domain.Impression, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]domain.Impression, 0, len(f.impressions))
	for _, i := range f.impressions {
		out = append(out, *i)
	}
	return out, nil
}

func (f *fakeImpressionRepo) Exists(id string) (bool, error) {
	if f.forcedErr != nil {
		return false, f.forcedErr
	}
	_, ok := f.impressions[id]
	return ok, nil
}

func (f *fakeImpressionRepo) Update(i *domain.Impression) (int64, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	if _, ok := f.impressions[i.ID]; !ok {
		return 0, nil
	}
	cp := *i
	f.impressions[i.ID] = &cp
	return 1, nil
}

func (f *fakeImpressionRepo) Delete(id string) (int64, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	if _, ok := f.impressions[id]; !ok {
		return 0, nil
	}
	delete(f.impressions, id)
	return 1, nil
}
