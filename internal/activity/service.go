package activity

import "time"

// placeholderOwnerID is attached to every created activity. The source
// system did the same; attributing activities to the authenticated caller
// is a pending product decision that needs per-user credentials first.
const placeholderOwnerID = "65f1a1b1c1d1e1f1g1h1i1j1"

type ActivityRepository interface {
	ListActivities() ([]Activity, error)
	CreateActivity(a *Activity) error
}

type ActivityService struct {
	repo ActivityRepository
}

func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) GetActivities() ([]Activity, error) {
	return s.repo.ListActivities()
}

func (s *ActivityService) CreateActivity(request *ActivityRequest) (*Activity, error) {
	a := Activity{
		UserID:       placeholderOwnerID,
		Type:         request.Type,
		Name:         request.Name,
		Description:  request.Description,
		Status:       "pending",
		StartTime:    time.Now().UTC(),
		EndTime:      request.EndTime,
		Location:     request.Location,
		Difficulty:   "medium",
		Participants: request.Participants,
		Notes:        request.Notes,
	}
	if request.Status != "" {
		a.Status = request.Status
	}
	if request.Difficulty != "" {
		a.Difficulty = request.Difficulty
	}
	if request.StartTime != nil {
		a.StartTime = *request.StartTime
	}
	if request.Rewards != nil {
		a.Rewards = *request.Rewards
	}
	if a.Rewards.Items == nil {
		a.Rewards.Items = []string{}
	}
	if a.Participants == nil {
		a.Participants = []string{}
	}

	if err := s.repo.CreateActivity(&a); err != nil {
		return nil, err
	}
	return &a, nil
}
