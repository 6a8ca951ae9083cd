// Package config manages application configuration for the Lumos API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - DatabaseConfig: SurrealDB connection settings
//   - SourcesConfig: upstream catalog APIs and cache TTL
//   - JWTConfig: JWT signing and validation settings
//   - AvatarConfig: GCS bucket for avatar objects
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	DB_HOST, DB_PORT     - SurrealDB address
//	DB_NAMESPACE, DB_DATABASE, DB_USER, DB_PASSWORD
//	WIZARDING_BASE_URL   - character/spell source base URL
//	POTIONS_BASE_URL     - potion source base URL
//	CACHE_TTL            - catalog cache expiry (default: 24h)
//	JWT_PRIVATE_KEY_PATH, JWT_PUBLIC_KEY_PATH, JWT_ISSUER
//	AVATAR_BUCKET        - GCS bucket name for avatar uploads
package config
