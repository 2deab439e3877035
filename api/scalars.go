package api

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

var (
	numPattern   = regexp.MustCompile(`^[1-9][0-9]{15}$`)
	loginPattern = regexp.MustCompile(`^[a-z0-9_]{2,20}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// unmarshalString decodes a string scalar input and checks it with valid.
func unmarshalString(scalar string, input interface{}, valid func(string) bool) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", fmt.Errorf("wrong type for %s: %T", scalar, input)
	}
	if valid != nil && !valid(s) {
		return "", fmt.Errorf("invalid %s: %q", scalar, s)
	}
	return s, nil
}

type UserID string

func (UserID) ImplementsGraphQLType(name string) bool { return name == "UserId" }

func (id *UserID) UnmarshalGraphQL(input interface{}) error {
	s, err := unmarshalString("UserId", input, nil)
	*id = UserID(s)
	return err
}

// Num is a 16-digit number never starting with zero.
type Num string

func (Num) ImplementsGraphQLType(name string) bool { return name == "Num" }

func (n *Num) UnmarshalGraphQL(input interface{}) error {
	s, err := unmarshalString("Num", input, numPattern.MatchString)
	*n = Num(s)
	return err
}

type UserLogin string

func (UserLogin) ImplementsGraphQLType(name string) bool { return name == "UserLogin" }

func (l *UserLogin) UnmarshalGraphQL(input interface{}) error {
	s, err := unmarshalString("UserLogin", input, loginPattern.MatchString)
	*l = UserLogin(s)
	return err
}

type UserName string

func (UserName) ImplementsGraphQLType(name string) bool { return name == "UserName" }

func (n *UserName) UnmarshalGraphQL(input interface{}) error {
	s, err := unmarshalString("UserName", input, func(s string) bool {
		l := utf8.RuneCountInString(s)
		return l >= 1 && l <= 100
	})
	*n = UserName(s)
	return err
}

type UserEmail string

func (UserEmail) ImplementsGraphQLType(name string) bool { return name == "UserEmail" }

func (e *UserEmail) UnmarshalGraphQL(input interface{}) error {
	s, err := unmarshalString("UserEmail", input, emailPattern.MatchString)
	*e = UserEmail(s)
	return err
}

type UserPassword string

func (UserPassword) ImplementsGraphQLType(name string) bool { return name == "UserPassword" }

func (p *UserPassword) UnmarshalGraphQL(input interface{}) error {
	s, err := unmarshalString("UserPassword", input, func(s string) bool {
		l := utf8.RuneCountInString(s)
		return l >= 1 && l <= 250
	})
	*p = UserPassword(s)
	return err
}

type AccessToken string

func (AccessToken) ImplementsGraphQLType(name string) bool { return name == "AccessToken" }

func (t *AccessToken) UnmarshalGraphQL(input interface{}) error {
	s, err := unmarshalString("AccessToken", input, nil)
	*t = AccessToken(s)
	return err
}

type RememberToken string

func (RememberToken) ImplementsGraphQLType(name string) bool { return name == "RememberToken" }

func (t *RememberToken) UnmarshalGraphQL(input interface{}) error {
	s, err := unmarshalString("RememberToken", input, nil)
	*t = RememberToken(s)
	return err
}

// Version is an opaque, monotonically growing entity version.
type Version string

func (Version) ImplementsGraphQLType(name string) bool { return name == "Version" }

func (v *Version) UnmarshalGraphQL(input interface{}) error {
	s, err := unmarshalString("Version", input, nil)
	*v = Version(s)
	return err
}
