package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for X-Hub-Signature-256; empty disables verification
	AllowedIPs      []string // IP or CIDR whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per source; 0 disables limiting
}
