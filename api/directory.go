package api

import (
	"crypto/subtle"
	"strconv"
	"sync"
	"time"

	"github.com/segmentio/ksuid"
)

const (
	SessionTTL           = 24 * time.Hour
	RememberedSessionTTL = 30 * 24 * time.Hour
)

// User is a registered account.
type User struct {
	ID                 UserID
	Num                Num
	Login              *UserLogin
	Name               *UserName
	Email              *UserEmail
	UnconfirmedEmail   *UserEmail
	Password           UserPassword
	DisplayNameSetting string
	Ver                int
}

type Session struct {
	Token    AccessToken
	UserID   UserID
	ExpireAt time.Time
	Ver      int
}

type RememberedSession struct {
	Token    RememberToken
	UserID   UserID
	ExpireAt time.Time
	Ver      int
}

// Directory keeps users and their sessions in memory. It is safe for
// concurrent use; every getter returns copies.
type Directory struct {
	mu         sync.RWMutex
	now        func() time.Time
	users      map[UserID]*User
	sessions   map[AccessToken]*Session
	remembered map[RememberToken]*RememberedSession
}

// NewDirectory returns a Directory holding the given users.
func NewDirectory(users ...User) *Directory {
	d := &Directory{
		now:        time.Now,
		users:      make(map[UserID]*User, len(users)),
		sessions:   make(map[AccessToken]*Session),
		remembered: make(map[RememberToken]*RememberedSession),
	}
	for i := range users {
		u := users[i]
		if u.DisplayNameSetting == "" {
			u.DisplayNameSetting = "NUM"
		}
		d.users[u.ID] = &u
	}
	return d
}

// User returns the user with the given id.
func (d *Directory) User(id UserID) (User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok {
		return User{}, false
	}
	return *u, true
}

// Lookup finds the user matching every non-nil identifier. At least one
// identifier must be given.
func (d *Directory) Lookup(num *Num, login *UserLogin, email *UserEmail) (User, bool) {
	if num == nil && login == nil && email == nil {
		return User{}, false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if num != nil && u.Num != *num {
			continue
		}
		if login != nil && (u.Login == nil || *u.Login != *login) {
			continue
		}
		if email != nil && (u.Email == nil || *u.Email != *email) {
			continue
		}
		return *u, true
	}
	return User{}, false
}

// LoginOccupied reports whether any user has the given login.
func (d *Directory) LoginOccupied(login UserLogin) bool {
	_, ok := d.Lookup(nil, &login, nil)
	return ok
}

// CheckPassword reports whether password authenticates the user with the given id.
// Users without a password never authenticate.
func (d *Directory) CheckPassword(id UserID, password UserPassword) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok || u.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1
}

// CreateSession starts a new session for the user. The remembered session is
// nil unless remember is set.
func (d *Directory) CreateSession(id UserID, remember bool) (Session, *RememberedSession) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.createSession(id, remember)
}

func (d *Directory) createSession(id UserID, remember bool) (Session, *RememberedSession) {
	now := d.now()
	s := &Session{
		Token:    AccessToken(ksuid.New().String()),
		UserID:   id,
		ExpireAt: now.Add(SessionTTL),
		Ver:      1,
	}
	d.sessions[s.Token] = s
	if !remember {
		return *s, nil
	}

	r := &RememberedSession{
		Token:    RememberToken(ksuid.New().String()),
		UserID:   id,
		ExpireAt: now.Add(RememberedSessionTTL),
		Ver:      1,
	}
	d.remembered[r.Token] = r
	rc := *r
	return *s, &rc
}

// RenewSession exchanges a valid remember token for a new session and a
// rotated remember token.
func (d *Directory) RenewSession(token RememberToken) (User, Session, RememberedSession, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.remembered[token]
	if !ok || !d.now().Before(r.ExpireAt) {
		return User{}, Session{}, RememberedSession{}, false
	}
	u, ok := d.users[r.UserID]
	if !ok {
		return User{}, Session{}, RememberedSession{}, false
	}

	delete(d.remembered, token)
	s, renewed := d.createSession(u.ID, true)
	renewed.Ver = r.Ver + 1
	d.remembered[renewed.Token].Ver = renewed.Ver
	return *u, s, *renewed, true
}

// DeleteSession removes the session identified by token if it belongs to the
// given user. Deleting a missing session is a no-op.
func (d *Directory) DeleteSession(id UserID, token AccessToken) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if s, ok := d.sessions[token]; ok && s.UserID == id {
		delete(d.sessions, token)
	}
}

// Authenticate returns the owner of a live session.
func (d *Directory) Authenticate(token AccessToken) (UserID, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s, ok := d.sessions[token]
	if !ok || !d.now().Before(s.ExpireAt) {
		return "", false
	}
	return s.UserID, true
}

// UpdateName sets or, when name is nil, resets the user's name.
func (d *Directory) UpdateName(id UserID, name *UserName) (User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users[id]
	if !ok {
		return User{}, false
	}
	if name != nil {
		n := *name
		u.Name = &n
	} else {
		u.Name = nil
	}
	u.Ver++
	return *u, true
}

func formatVersion(v int) Version {
	return Version(strconv.Itoa(v))
}
