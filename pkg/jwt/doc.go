// Package jwt provides JSON Web Token utilities for the Lumos API.
//
// Tokens are RS256-signed. The API signs and validates with its own key
// pair; validation-only deployments may load just the public key.
//
// # Token Generation
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "keys/private.pem",
//	    Issuer:         "lumos-api",
//	    ExpirationMins: 60,
//	})
//
//	token, err := service.Issue(userID, email)
//
// # Token Validation
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	userID := claims.UserID
package jwt
