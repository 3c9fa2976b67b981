package domain

// Role names form a fixed, closed set. They are created once by the seeder
// and never mutated afterwards.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
	RoleOwner = "OWNER"
)

// KnownRoles returns the full role set in seeding order.
func KnownRoles() []string {
	return []string{RoleUser, RoleAdmin, RoleOwner}
}

// SeedOutcome reports how a seeding run concluded.
type SeedOutcome string

const (
	// SeedAlreadyDone means every role existed and no writes were issued.
	SeedAlreadyDone SeedOutcome = "already_seeded"
	// SeedCompleted means the role set was (re-)created.
	SeedCompleted SeedOutcome = "seeded"
)
