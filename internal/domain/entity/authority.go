package entity

// AuthorityMode names which store currently owns the truth for a cart. It is
// recomputed from the session credential on every cart operation and is never
// stored independently.
type AuthorityMode string

const (
	// AuthorityLocal means the cart lives in the durable local cache only.
	AuthorityLocal AuthorityMode = "local"

	// AuthorityRemote means the server-side cart resource is authoritative.
	AuthorityRemote AuthorityMode = "remote"
)

// Credential is a validated bearer credential for the remote cart resource.
type Credential struct {
	// Token is the raw bearer token, forwarded on every remote cart call.
	Token string

	// UserID is the subject claim of the validated token.
	UserID string
}
