package domain

// User is an account that can authenticate against the API. The password is
// never part of the entity, it only travels alongside it on creation and
// lives in storage as a bcrypt hash.
type User struct {
	id            UserID
	name          Username
	email         Email
	emailVerified bool
	metadata      Metadata
}

// NewUser mints a user with a fresh id, unverified email and fresh metadata.
func NewUser(name Username, email Email) User {
	return User{
		id:       NewUserID(),
		name:     name,
		email:    email,
		metadata: NewMetadata(),
	}
}

// UserConfig rehydrates a User from storage.
type UserConfig struct {
	ID            UserID
	Name          Username
	Email         Email
	EmailVerified bool
	Metadata      Metadata
}

func UserFromConfig(cfg UserConfig) User {
	return User{
		id:            cfg.ID,
		name:          cfg.Name,
		email:         cfg.Email,
		emailVerified: cfg.EmailVerified,
		metadata:      cfg.Metadata,
	}
}

func (u User) ID() UserID          { return u.id }
func (u User) Name() Username      { return u.name }
func (u User) Email() Email        { return u.email }
func (u User) EmailVerified() bool { return u.emailVerified }
func (u User) Metadata() Metadata  { return u.metadata }

// Setter starts a mutation of the user. Commit returns the updated copy with
// a bumped metadata timestamp.
func (u User) Setter() *UserSetter {
	return &UserSetter{user: u}
}

type UserSetter struct {
	user User
}

func (s *UserSetter) Name(name Username) *UserSetter {
	s.user.name = name

	return s
}

func (s *UserSetter) EmailVerified(verified bool) *UserSetter {
	s.user.emailVerified = verified

	return s
}

func (s *UserSetter) Commit() User {
	s.user.metadata = s.user.metadata.Updated()

	return s.user
}
