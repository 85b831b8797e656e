package auth

// User-facing success messages returned alongside each operation's result.
const (
	MsgRegistered  = "User registered successfully"
	MsgLoggedIn    = "Login successful"
	MsgCurrentUser = "User fetched successfully"
	MsgLoggedOut   = "Logged out successfully"
)
