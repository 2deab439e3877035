package api

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/pkg/errors"
)

var (
	errUnauthenticated = errors.New("authentication required")
	errNoIdentifier    = errors.New("one of num, login or email must be provided")
	errUnknownViewer   = errors.New("authenticated user does not exist")
)

// Resolver is the root resolver of Schema, serving both Query and Mutation.
type Resolver struct {
	dir *Directory
}

func NewResolver(dir *Directory) *Resolver {
	if dir == nil {
		dir = NewDirectory()
	}
	return &Resolver{dir: dir}
}

func (r *Resolver) viewer(ctx context.Context) (User, error) {
	id, ok := Viewer(ctx)
	if !ok {
		return User{}, errUnauthenticated
	}
	u, ok := r.dir.User(id)
	if !ok {
		return User{}, errUnknownViewer
	}
	return u, nil
}

func (r *Resolver) Me(ctx context.Context) (*MyUserResolver, error) {
	u, err := r.viewer(ctx)
	if err != nil {
		return nil, err
	}
	return &MyUserResolver{u: u}, nil
}

type identifierArgs struct {
	Num   *Num
	Login *UserLogin
	Email *UserEmail
}

func (r *Resolver) CheckUserIdentifiable(args identifierArgs) (bool, error) {
	if args.Num == nil && args.Login == nil && args.Email == nil {
		return false, errNoIdentifier
	}
	_, ok := r.dir.Lookup(args.Num, args.Login, args.Email)
	return ok, nil
}

func (r *Resolver) CheckUserLoginOccupied(args struct{ Login UserLogin }) bool {
	return r.dir.LoginOccupied(args.Login)
}

func (r *Resolver) CreateSession(args struct {
	Num      *Num
	Login    *UserLogin
	Email    *UserEmail
	Password UserPassword
	Remember bool
}) (*SessionResultResolver, error) {
	if args.Num == nil && args.Login == nil && args.Email == nil {
		return nil, errNoIdentifier
	}

	u, ok := r.dir.Lookup(args.Num, args.Login, args.Email)
	if !ok {
		return sessionError("UNKNOWN_USER"), nil
	}
	if !r.dir.CheckPassword(u.ID, args.Password) {
		return sessionError("WRONG_PASSWORD"), nil
	}

	s, remembered := r.dir.CreateSession(u.ID, args.Remember)
	return &SessionResultResolver{user: &u, session: &s, remembered: remembered}, nil
}

func (r *Resolver) RenewSession(args struct{ Token RememberToken }) *SessionResultResolver {
	u, s, remembered, ok := r.dir.RenewSession(args.Token)
	if !ok {
		return sessionError("WRONG_REMEMBER_TOKEN")
	}
	return &SessionResultResolver{user: &u, session: &s, remembered: &remembered}
}

func (r *Resolver) DeleteSession(ctx context.Context, args struct{ Token AccessToken }) (bool, error) {
	u, err := r.viewer(ctx)
	if err != nil {
		return false, err
	}
	r.dir.DeleteSession(u.ID, args.Token)
	return true, nil
}

func (r *Resolver) UpdateUserName(ctx context.Context, args struct{ Name *UserName }) (*MyUserResolver, error) {
	u, err := r.viewer(ctx)
	if err != nil {
		return nil, err
	}
	u, ok := r.dir.UpdateName(u.ID, args.Name)
	if !ok {
		return nil, errUnknownViewer
	}
	return &MyUserResolver{u: u}, nil
}

type MyUserResolver struct {
	u User
}

func (r *MyUserResolver) ID() UserID { return r.u.ID }
func (r *MyUserResolver) Num() Num { return r.u.Num }
func (r *MyUserResolver) Login() *UserLogin { return r.u.Login }
func (r *MyUserResolver) Name() *UserName { return r.u.Name }
func (r *MyUserResolver) Email() *UserEmail { return r.u.Email }
func (r *MyUserResolver) UnconfirmedEmail() *UserEmail { return r.u.UnconfirmedEmail }
func (r *MyUserResolver) HasPassword() bool { return r.u.Password != "" }
func (r *MyUserResolver) DisplayNameSetting() string { return r.u.DisplayNameSetting }
func (r *MyUserResolver) Ver() Version { return formatVersion(r.u.Ver) }

type SessionResolver struct {
	s Session
}

func (r *SessionResolver) Token() AccessToken { return r.s.Token }
func (r *SessionResolver) ExpireAt() graphql.Time { return graphql.Time{Time: r.s.ExpireAt} }
func (r *SessionResolver) Ver() Version { return formatVersion(r.s.Ver) }

type RememberedSessionResolver struct {
	s RememberedSession
}

func (r *RememberedSessionResolver) Token() RememberToken { return r.s.Token }
func (r *RememberedSessionResolver) ExpireAt() graphql.Time { return graphql.Time{Time: r.s.ExpireAt} }
func (r *RememberedSessionResolver) Ver() Version { return formatVersion(r.s.Ver) }

// SessionResultResolver resolves both CreateSessionResult and
// RenewSessionResult: either err is set or user and session are.
type SessionResultResolver struct {
	user       *User
	session    *Session
	remembered *RememberedSession
	err        *string
}

func sessionError(code string) *SessionResultResolver {
	return &SessionResultResolver{err: &code}
}

func (r *SessionResultResolver) Session() *SessionResolver {
	if r.session == nil {
		return nil
	}
	return &SessionResolver{s: *r.session}
}

func (r *SessionResultResolver) Remembered() *RememberedSessionResolver {
	if r.remembered == nil {
		return nil
	}
	return &RememberedSessionResolver{s: *r.remembered}
}

func (r *SessionResultResolver) User() *MyUserResolver {
	if r.user == nil {
		return nil
	}
	return &MyUserResolver{u: *r.user}
}

func (r *SessionResultResolver) Error() *string {
	return r.err
}
