package telegram

// User is what the session remembers about a peer. Only the phone number of
// our own user is ever read back, when re-logging after a reset.
type User struct {
	ID        int32
	Phone     string
	FirstName string
	LastName  string
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (s *State) SetUser(u *User) {
	if u == nil {
		return
	}
	s.Lock()
	defer s.Unlock()
	cp := *u
	s.users[u.ID] = &cp
}

// User returns a copy of the cached user, or nil.
func (s *State) User(id int32) *User {
	s.Lock()
	defer s.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	cp := *u
	return &cp
}

// Self returns our own user when it is cached.
func (s *State) Self() *User {
	return s.User(s.OurID())
}
