package entity

// Identity is the user as the identity provider knows it.
type Identity struct {
	ProviderUserID string
	Email          string
	EmailVerified  bool
	DisplayName    string
	PhotoURL       string
}

// AuthResult is what every successful credential call yields.
type AuthResult struct {
	Identity     Identity
	IDToken      string // fresh bearer token, forwarded to the backend
	RefreshToken string
}

// SignInMethod names the path a user took to authenticate.
type SignInMethod string

const (
	SignInMethodEmail  SignInMethod = "email"
	SignInMethodGoogle SignInMethod = "google"
	SignInMethodSignUp SignInMethod = "signup"
	SignInMethodMFA    SignInMethod = "mfa"
	SignInMethodPhone  SignInMethod = "phone"
)
