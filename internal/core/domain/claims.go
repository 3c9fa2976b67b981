package domain

// Claim keys embedded in issued tokens.
const (
	ClaimName           = "name"
	ClaimNameIdentifier = "nameidentifier"
	ClaimTokenID        = "jti"
	ClaimRole           = "role"
)

// Claim is a single (key, value) assertion about an authenticated subject.
type Claim struct {
	Key   string
	Value string
}

// ClaimSet is the ordered collection of claims assembled for one login.
// Order matters: role claims are a repeatable, order-preserving list, so the
// set is a sequence rather than a map.
type ClaimSet []Claim

// Get returns the first value for key.
func (cs ClaimSet) Get(key string) (string, bool) {
	for _, c := range cs {
		if c.Key == key {
			return c.Value, true
		}
	}
	return "", false
}

// Values returns every value for key, preserving claim order.
func (cs ClaimSet) Values(key string) []string {
	var values []string
	for _, c := range cs {
		if c.Key == key {
			values = append(values, c.Value)
		}
	}
	return values
}
