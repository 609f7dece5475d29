package session

import "strings"

type ServiceSession interface {
	ListPublished() ([]*Session, error)
	GetPublished(id string) (*Session, error)
	ListOwned(ownerID string) ([]*Session, error)
	GetOwned(ownerID, id string) (*Session, error)
	SaveDraft(ownerID string, d Draft) (*Session, bool, error)
	Publish(ownerID, id string) (*Session, error)
	Delete(ownerID, id string) error
}

type SessionService struct {
	Repo Repository
}

func NewService(repo Repository) *SessionService {
	return &SessionService{Repo: repo}
}

func (s *SessionService) ListPublished() ([]*Session, error) {
	return s.Repo.ListPublished()
}

func (s *SessionService) GetPublished(id string) (*Session, error) {
	return s.Repo.FindPublished(id)
}

func (s *SessionService) ListOwned(ownerID string) ([]*Session, error) {
	return s.Repo.ListOwned(ownerID)
}

func (s *SessionService) GetOwned(ownerID, id string) (*Session, error) {
	return s.Repo.FindOwned(ownerID, id)
}

// SaveDraft creates a new draft when d.ID is empty and otherwise overwrites
// the owner's existing session. An edit to a published session reverts it to
// draft. The second return value reports whether a new session was created.
func (s *SessionService) SaveDraft(ownerID string, d Draft) (*Session, bool, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Content = strings.TrimSpace(d.Content)
	if d.Title == "" || d.Content == "" {
		return nil, false, ErrValidation
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}

	if d.ID != "" {
		updated, err := s.Repo.UpdateDraft(ownerID, d.ID, d)
		if err != nil {
			return nil, false, err
		}
		return updated, false, nil
	}

	created := &Session{
		OwnerID:         ownerID,
		Title:           d.Title,
		Tags:            d.Tags,
		Content:         d.Content,
		ScheduledAt:     d.ScheduledAt,
		DurationMinutes: d.DurationMinutes,
		Status:          StatusDraft,
	}
	if err := s.Repo.Create(created); err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// Publish is idempotent: publishing an already-published session returns it
// unchanged without error.
func (s *SessionService) Publish(ownerID, id string) (*Session, error) {
	return s.Repo.Publish(ownerID, id)
}

func (s *SessionService) Delete(ownerID, id string) error {
	return s.Repo.Delete(ownerID, id)
}
