package config

// validate rejects configurations the server must not start with.
//
// In production the token signing secret is mandatory: starting without one
// would silently fall back to a publicly known test key and make every
// session forgeable. The database DSN is always required since every auth
// flow depends on the user directory.
func (c *StructuredConfig) validate() error {
	if c.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if c.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}
