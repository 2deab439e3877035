// Package api is the account GraphQL API of the application: its schema,
// resolvers and the in-memory directory backing them.
package api

// Schema is the SDL of the account API.
var Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	"Read-only entry points of the account API."
	type Query {
		"""
		Returns the authenticated MyUser.

		Authentication: mandatory
		"""
		me: MyUser!

		"""
		Checks whether a User with the given identifier exists.

		Exactly one of num, login or email must be provided.

		Authentication: no
		"""
		checkUserIdentifiable(num: Num, login: UserLogin, email: UserEmail): Boolean!

		"""
		Checks whether the given login is occupied by any User already.

		Authentication: no
		"""
		checkUserLoginOccupied(login: UserLogin!): Boolean!
	}

	"Entry points of the account API that change state."
	type Mutation {
		"""
		Creates a new Session for the MyUser identified by num, login or email
		and authenticated by password.

		If remember is true a RememberedSession is created as well, allowing
		renewSession to be used once the Session expires.

		Authentication: no

		Result: it's guaranteed that either user or error is not null.
		"""
		createSession(
			num: Num,
			login: UserLogin,
			email: UserEmail,
			password: UserPassword!,
			remember: Boolean!
		): CreateSessionResult!

		"""
		Renews a Session of the MyUser owning the given RememberToken.

		The RememberToken is rotated on success.

		Authentication: no
		"""
		renewSession(token: RememberToken!): RenewSessionResult!

		"""
		Deletes the Session identified by the given AccessToken.

		Authentication: mandatory

		Idempotent: succeeds as no-op if the Session is deleted already.
		Always returns true.
		"""
		deleteSession(token: AccessToken!): Boolean!

		"""
		Updates or resets the name of the authenticated MyUser.

		Authentication: mandatory
		"""
		updateUserName(name: UserName): MyUser!
	}

	"The authenticated user."
	type MyUser {
		id: UserId!
		"Unique 16-digit number of this MyUser, always present."
		num: Num!
		"Unique login of this MyUser, used for sign-in."
		login: UserLogin
		"Not unique, intended for displaying this MyUser in a readable form."
		name: UserName
		"Email address allowing sign-in and password recovery."
		email: UserEmail
		"Newly set email address that requires confirmation."
		unconfirmedEmail: UserEmail
		hasPassword: Boolean!
		displayNameSetting: DisplayNameSetting!
		ver: Version!
	}

	"Which identifier of a MyUser is shown to other users."
	enum DisplayNameSetting {
		NUM
		LOGIN
		NAME
		EMAIL
	}

	type Session {
		token: AccessToken!
		expireAt: Time!
		ver: Version!
	}

	type RememberedSession {
		token: RememberToken!
		expireAt: Time!
		ver: Version!
	}

	type CreateSessionResult {
		"null if the mutation failed."
		session: Session
		"null if the mutation failed or remember was false."
		remembered: RememberedSession
		"null if the mutation failed."
		user: MyUser
		"null if the mutation succeeded."
		error: CreateSessionError
	}

	enum CreateSessionError {
		UNKNOWN_USER
		WRONG_PASSWORD
	}

	type RenewSessionResult {
		session: Session
		remembered: RememberedSession
		user: MyUser
		error: RenewSessionError
	}

	enum RenewSessionError {
		WRONG_REMEMBER_TOKEN
	}

	"Unique identifier of a User."
	scalar UserId
	"Unique 16-digit number of a User."
	scalar Num
	"Unique login of a User: 2 to 20 lowercase letters, digits and underscores."
	scalar UserLogin
	"Name of a User."
	scalar UserName
	"Email address of a User."
	scalar UserEmail
	"Password of a User: 1 to 250 characters."
	scalar UserPassword
	"Token authenticating a Session."
	scalar AccessToken
	"Token allowing to renew a Session."
	scalar RememberToken
	"Version of an entity, changes on every update."
	scalar Version
	"RFC 3339 timestamp."
	scalar Time
`
