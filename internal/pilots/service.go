package pilots

// ListingView is a listing decorated with everything the browse view renders.
type ListingView struct {
	PilotListing
	ReadinessScore ReadinessScore   `json:"readiness"`
	Checklist      []ReadinessCheck `json:"readinessChecklist"`
	RiskLabel      string           `json:"riskLabel"`
	RiskBadge      BadgeStyle       `json:"riskBadge"`
}

func NewListingView(l PilotListing) ListingView {
	badge, _ := Badge(l.Risk)
	return ListingView{
		PilotListing:   l,
		ReadinessScore: Score(l.Readiness),
		Checklist:      Checklist(l.Readiness),
		RiskLabel:      RiskLabel(l.Risk),
		RiskBadge:      badge,
	}
}

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Browse runs the filter over the whole catalog and decorates the visible subset.
func (s *Service) Browse(sel FilterSelection) []ListingView {
	visible := Filter(s.store.List(), sel)
	views := make([]ListingView, 0, len(visible))
	for _, l := range visible {
		views = append(views, NewListingView(l))
	}
	return views
}

func (s *Service) Get(id int) (ListingView, error) {
	l, err := s.store.Get(id)
	if err != nil {
		return ListingView{}, err
	}
	return NewListingView(l), nil
}

func (s *Service) Total() int {
	return s.store.Len()
}
