package configs

// Payment holds the gateway credentials. KeySecret is the shared secret the
// gateway uses to sign payment notifications; notification verification is
// impossible without it, so an empty secret rejects every notification.
type Payment struct {
	// BaseURL is the gateway API endpoint used for order creation.
	BaseURL string `env:"BASE_URL" envDefault:"https://api.gateway.test"`
	// KeyID identifies the merchant account to the gateway.
	KeyID string `env:"KEY_ID"`
	// KeySecret signs order requests and payment notifications.
	KeySecret string `env:"KEY_SECRET"`
	// Currency is the default order currency in ISO 4217.
	Currency string `env:"CURRENCY" envDefault:"INR"`
}
